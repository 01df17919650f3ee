// Package app wires configuration, storage, clients and services into
// a running application.
package app

import (
	"context"
	"fmt"

	"github.com/mattcarrick/folio/internal/clients/baraka"
	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
	"github.com/mattcarrick/folio/internal/services/bucket"
	"github.com/mattcarrick/folio/internal/services/valuation"
	"github.com/mattcarrick/folio/internal/storage/ledger"
	"github.com/mattcarrick/folio/internal/storage/pricefs"
)

// App holds all application components.
type App struct {
	Config *common.Config
	Logger *common.Logger

	PriceStore  interfaces.PriceStore
	TradeSource interfaces.TradeSource
	QuoteClient interfaces.QuoteClient

	ValuationService interfaces.ValuationService
	BucketService    interfaces.BucketService
}

// New creates a fully wired application from configuration.
func New(ctx context.Context, config *common.Config) (*App, error) {
	logger := common.NewLoggerFromConfig(config.Logging)

	priceStore, err := pricefs.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize price store: %w", err)
	}

	tradeSource, err := ledger.Load(logger, config.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade ledger: %w", err)
	}

	quoteClient := baraka.NewClient(
		baraka.WithBaseURL(config.Clients.Baraka.BaseURL),
		baraka.WithTimeout(config.Clients.Baraka.GetTimeout()),
		baraka.WithRateLimit(config.Clients.Baraka.RateLimit),
		baraka.WithLogger(logger),
	)

	buckets := make([]models.Bucket, 0, len(config.Buckets))
	for _, b := range config.Buckets {
		buckets = append(buckets, models.Bucket{
			Code:    b.Code(),
			Name:    b.Name,
			Symbols: b.Symbols,
		})
	}
	catalog := models.NewBucketCatalog(buckets)

	valuationService := valuation.NewService(tradeSource, priceStore, quoteClient, config.Symbols, logger)
	bucketService := bucket.NewService(catalog, valuationService, logger)

	app := &App{
		Config:           config,
		Logger:           logger,
		PriceStore:       priceStore,
		TradeSource:      tradeSource,
		QuoteClient:      quoteClient,
		ValuationService: valuationService,
		BucketService:    bucketService,
	}

	logger.Info().
		Str("environment", config.Environment).
		Int("symbols", len(config.Symbols)).
		Int("buckets", len(config.Buckets)).
		Int("trades", len(tradeSource.Trades())).
		Msg("Application initialized")

	return app, nil
}
