// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"

	"github.com/mattcarrick/folio/internal/models"
)

// QuoteClient fetches historical closing prices from the remote quote API.
type QuoteClient interface {
	// GetHistoricalPrices returns the recent daily price series for a
	// symbol. The series is not guaranteed to be sorted or complete.
	GetHistoricalPrices(ctx context.Context, symbol string) ([]models.PricePoint, error)
}
