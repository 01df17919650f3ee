package valuation

import (
	"context"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/models"
)

// loadMergedSeries fetches fresh quotes, merges them with the cached
// series and writes the result back. A dead upstream degrades to the
// cache; an empty merged series is a hard failure.
func (s *Service) loadMergedSeries(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	fresh, err := s.quotes.GetHistoricalPrices(ctx, symbol)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Quote fetch failed, falling back to cached prices")
		fresh = nil
	}

	cached, err := s.prices.GetSeries(ctx, symbol)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Failed to read cached price series")
		cached = nil
	}

	merged := mergeSeries(cached, fresh)
	if len(merged) == 0 {
		return nil, common.NotFoundf("Failed to get historical price data for %s", symbol)
	}

	// Persistence is best effort; valuation proceeds on the in-memory
	// series either way.
	if err := s.prices.SaveSeries(ctx, symbol, merged); err != nil {
		s.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Failed to persist merged price series")
	}

	return merged, nil
}

// mergeSeries unions two price series by calendar day. Where both
// carry a point for the same day the fresh one wins. The result is
// sorted by date ascending.
func mergeSeries(cached, fresh []models.PricePoint) []models.PricePoint {
	byDay := make(map[string]models.PricePoint, len(cached)+len(fresh))

	for _, point := range cached {
		byDay[models.DayKey(point.Date)] = point
	}
	for _, point := range fresh {
		byDay[models.DayKey(point.Date)] = point
	}

	merged := make([]models.PricePoint, 0, len(byDay))
	for _, point := range byDay {
		merged = append(merged, point)
	}

	models.SortPricePointsByDate(merged)
	return merged
}
