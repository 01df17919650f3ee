package interfaces

import (
	"context"

	"github.com/mattcarrick/folio/internal/models"
)

// PriceStore persists the historical price series per symbol.
type PriceStore interface {
	// GetSeries returns the cached series for a symbol, or an empty
	// series when nothing has been cached yet.
	GetSeries(ctx context.Context, symbol string) ([]models.PricePoint, error)

	// SaveSeries replaces the cached series for a symbol in full.
	SaveSeries(ctx context.Context, symbol string, series []models.PricePoint) error
}

// TradeSource provides the read-only trade ledger.
type TradeSource interface {
	// Trades returns all ledger trades. The returned slice is the
	// caller's to iterate but the records are shared and immutable.
	Trades() []models.Trade
}
