// Package ledger loads the read-only trade ledger from disk.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
)

// Source is an immutable in-memory trade ledger, loaded once at startup.
type Source struct {
	trades []models.Trade
}

// Load reads the ledger JSON file. The file must exist and parse; an
// empty array is a valid (empty) ledger.
func Load(logger *common.Logger, path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trade ledger %s: %w", path, err)
	}

	var trades []models.Trade
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("failed to parse trade ledger %s: %w", path, err)
	}

	logger.Info().Str("path", path).Int("trades", len(trades)).Msg("Trade ledger loaded")
	return &Source{trades: trades}, nil
}

// NewSource wraps an in-memory trade list, for tests and embedding.
func NewSource(trades []models.Trade) *Source {
	copied := make([]models.Trade, len(trades))
	copy(copied, trades)
	return &Source{trades: copied}
}

// Trades returns a copy of the ledger slice. Records are values, so
// callers cannot mutate the source.
func (s *Source) Trades() []models.Trade {
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Ensure Source implements TradeSource
var _ interfaces.TradeSource = (*Source)(nil)
