package interfaces

import (
	"context"

	"github.com/mattcarrick/folio/internal/models"
)

// ValuationService computes per-symbol portfolio valuations.
type ValuationService interface {
	// ValueSymbol replays the symbol's trade history against merged
	// price data and returns the valuation summary.
	ValueSymbol(ctx context.Context, symbol string) (*models.SymbolValuation, error)
}

// BucketService aggregates symbol valuations into bucket totals.
type BucketService interface {
	// ValueBucket values every symbol in the named bucket and sums the
	// successes. Individual symbol failures become error entries in the
	// breakdown; only an unknown bucket name fails the call itself.
	ValueBucket(ctx context.Context, name string) (*models.BucketValuation, error)
}
