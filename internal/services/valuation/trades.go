package valuation

import (
	"sort"
	"time"

	"github.com/mattcarrick/folio/internal/models"
)

// ledgerEntry pairs a trade with its parsed execution day so the
// replay loop never parses dates twice.
type ledgerEntry struct {
	models.Trade
	day time.Time
}

// selectTrades filters the ledger down to one symbol's trades, in
// execution-date order. Symbol matching ignores case and surrounding
// whitespace; trades with unparseable dates are dropped. The stable
// sort keeps same-day trades in ledger order.
func selectTrades(trades []models.Trade, symbol string) []ledgerEntry {
	var selected []ledgerEntry

	for _, trade := range trades {
		if models.NormalizeSymbol(trade.Symbol) != symbol {
			continue
		}

		day, ok := models.ParseTradeDate(trade.Date)
		if !ok {
			continue
		}

		selected = append(selected, ledgerEntry{Trade: trade, day: day})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].day.Before(selected[j].day)
	})

	return selected
}
