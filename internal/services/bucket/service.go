// Package bucket aggregates per-symbol valuations into named
// portfolio buckets.
package bucket

import (
	"context"
	"sync"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
)

// maxConcurrentValuations bounds how many symbols are valued at once
// for a single bucket request.
const maxConcurrentValuations = 5

// Service implements BucketService
type Service struct {
	catalog   *models.BucketCatalog
	valuation interfaces.ValuationService
	logger    *common.Logger
}

// NewService creates a new bucket aggregation service.
func NewService(catalog *models.BucketCatalog, valuation interfaces.ValuationService, logger *common.Logger) *Service {
	return &Service{
		catalog:   catalog,
		valuation: valuation,
		logger:    logger,
	}
}

// ValueBucket values every symbol in the named bucket concurrently and
// sums the successes. A symbol that fails to value becomes an error
// entry in the breakdown without failing the bucket.
func (s *Service) ValueBucket(ctx context.Context, name string) (*models.BucketValuation, error) {
	code := common.NormalizeBucketCode(name)

	bucket, ok := s.catalog.Find(code)
	if !ok {
		return nil, common.BadRequestf("Invalid bucket name")
	}

	valuations := s.valueSymbols(ctx, bucket.Symbols)

	result := &models.BucketValuation{
		Name:         bucket.Name,
		ProfitLosses: make([]models.SymbolProfitLoss, 0, len(bucket.Symbols)),
	}

	var totalInvested, totalValue, totalQuantity, realized, unrealized float64

	for i, symbol := range bucket.Symbols {
		valuation := valuations[i]

		if valuation.err != nil {
			s.logger.Warn().
				Err(valuation.err).
				Str("bucket", bucket.Name).
				Str("symbol", symbol).
				Msg("Symbol valuation failed within bucket")

			result.ProfitLosses = append(result.ProfitLosses, models.SymbolProfitLoss{
				Symbol: symbol,
				Error:  valuation.err.Error(),
			})
			continue
		}

		v := valuation.value
		totalInvested += v.InvestedAmount
		totalValue += v.CurrentValue
		totalQuantity += v.TotalShareQuantity
		realized += v.RealizedProfitLoss
		unrealized += v.UnrealizedProfitLoss

		result.ProfitLosses = append(result.ProfitLosses, models.SymbolProfitLoss{
			Symbol:               symbol,
			RealizedProfitLoss:   models.Float64Ptr(v.RealizedProfitLoss),
			UnrealizedProfitLoss: models.Float64Ptr(v.UnrealizedProfitLoss),
		})
	}

	result.TotalShareQuantity = totalQuantity
	result.InvestedAmount = common.Round4(totalInvested)
	result.CurrentValue = common.Round4(totalValue)
	result.RealizedProfitLoss = common.Round4(realized)
	result.UnrealizedProfitLoss = common.Round4(unrealized)

	if totalQuantity > 0 {
		result.AverageBuyPrice = common.Round4(totalInvested / totalQuantity)
		result.LatestPrice = common.Round4(totalValue / totalQuantity)
	}

	return result, nil
}

// symbolValuation is one slot of a bucket's concurrent fan-out.
type symbolValuation struct {
	value *models.SymbolValuation
	err   error
}

// valueSymbols fans the symbols out to the valuation service with
// bounded concurrency. The returned slice is index-aligned with the
// input so the breakdown keeps the bucket's declared order.
func (s *Service) valueSymbols(ctx context.Context, symbols []string) []symbolValuation {
	results := make([]symbolValuation, len(symbols))

	semaphore := make(chan struct{}, maxConcurrentValuations)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			value, err := s.valuation.ValueSymbol(ctx, symbol)
			results[i] = symbolValuation{value: value, err: err}
		}(i, symbol)
	}

	wg.Wait()
	return results
}

// Ensure Service implements BucketService
var _ interfaces.BucketService = (*Service)(nil)
