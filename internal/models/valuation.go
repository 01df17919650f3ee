package models

// TradeResult is a ledger trade annotated with the price it executed
// against and its money effects. The symbol is implied by the
// containing SymbolValuation.
type TradeResult struct {
	Type          string  `json:"type"`
	ShareQuantity float64 `json:"share_quantity"`
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	TotalAmount   float64 `json:"total_amount"`
	// Sell-only annotations
	AverageBuyPrice    *float64 `json:"average_buy_price,omitempty"`
	TotalBuyAmount     *float64 `json:"total_buy_amount,omitempty"`
	RealizedProfitLoss *float64 `json:"realized_profit_loss,omitempty"`
}

// SymbolValuation is the full valuation summary for one symbol.
type SymbolValuation struct {
	Symbol               string        `json:"symbol"`
	TotalShareQuantity   float64       `json:"total_share_quantity"`
	AverageBuyPrice      float64       `json:"average_buy_price"`
	LatestPrice          float64       `json:"latest_price"`
	InvestedAmount       float64       `json:"invested_amount"`
	CurrentValue         float64       `json:"current_value"`
	RealizedProfitLoss   float64       `json:"realized_profit_loss"`
	UnrealizedProfitLoss float64       `json:"unrealized_profit_loss"`
	LatestPriceDate      string        `json:"latest_price_date"`
	Trades               []TradeResult `json:"trades"`
}

// SymbolProfitLoss is one entry in a bucket's per-symbol breakdown:
// either a profit/loss pair or an error marker, never both.
type SymbolProfitLoss struct {
	Symbol               string   `json:"symbol"`
	RealizedProfitLoss   *float64 `json:"realized_profit_loss,omitempty"`
	UnrealizedProfitLoss *float64 `json:"unrealized_profit_loss,omitempty"`
	Error                string   `json:"error,omitempty"`
}

// BucketValuation aggregates symbol valuations for a named bucket.
// Totals reflect successful symbols only; failed symbols appear in
// ProfitLosses as error entries.
type BucketValuation struct {
	Name                 string             `json:"name"`
	TotalShareQuantity   float64            `json:"total_share_quantity"`
	AverageBuyPrice      float64            `json:"average_buy_price"`
	LatestPrice          float64            `json:"latest_price"`
	InvestedAmount       float64            `json:"invested_amount"`
	CurrentValue         float64            `json:"current_value"`
	RealizedProfitLoss   float64            `json:"realized_profit_loss"`
	UnrealizedProfitLoss float64            `json:"unrealized_profit_loss"`
	ProfitLosses         []SymbolProfitLoss `json:"profit_losses"`
}

// Float64Ptr returns a pointer to v, for optional output fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
