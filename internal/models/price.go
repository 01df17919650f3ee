package models

import (
	"sort"
	"time"
)

// PricePoint is a single day's closing price.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// SortPricePointsByDate sorts a price series ascending by date, in place.
// Equal dates keep their relative order.
func SortPricePointsByDate(series []PricePoint) {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
}
