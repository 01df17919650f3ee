// Package models defines data structures for Folio
package models

import (
	"strings"
	"time"
)

// Trade types as they appear in the ledger. Matching is case-insensitive;
// anything else is ignored by the valuation engine.
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// DayFormat is the calendar-day key format used throughout.
const DayFormat = "2006-01-02"

// Trade is a single ledger entry. The ledger is read-only; the engine
// never mutates a Trade.
type Trade struct {
	Symbol        string  `json:"symbol"`
	Type          string  `json:"type"`
	ShareQuantity float64 `json:"share_quantity"`
	Date          string  `json:"date"`
}

// IsBuy reports whether the trade is a buy (case-insensitive).
func (t Trade) IsBuy() bool {
	return strings.EqualFold(t.Type, TradeTypeBuy)
}

// IsSell reports whether the trade is a sell (case-insensitive).
func (t Trade) IsSell() bool {
	return strings.EqualFold(t.Type, TradeTypeSell)
}

// tradeDateLayouts are the accepted ledger date formats, most common first.
var tradeDateLayouts = []string{
	DayFormat,
	"2006-1-2", // permissive single-digit month/day
	time.RFC3339,
}

// ParseTradeDate parses a ledger date string, truncated to day
// granularity (midnight UTC). The second return is false for anything
// unparseable; callers filter such trades out rather than erroring.
func ParseTradeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tradeDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// DayKey returns the calendar-day lookup key for a timestamp.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
