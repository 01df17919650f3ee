// Package valuation computes per-symbol portfolio valuations from the
// trade ledger and historical price data.
package valuation

import (
	"context"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
)

// Service implements ValuationService
type Service struct {
	trades  interfaces.TradeSource
	prices  interfaces.PriceStore
	quotes  interfaces.QuoteClient
	symbols []string
	logger  *common.Logger
}

// NewService creates a new valuation service. symbols is the valid
// product universe; requests outside it are rejected.
func NewService(
	trades interfaces.TradeSource,
	prices interfaces.PriceStore,
	quotes interfaces.QuoteClient,
	symbols []string,
	logger *common.Logger,
) *Service {
	return &Service{
		trades:  trades,
		prices:  prices,
		quotes:  quotes,
		symbols: symbols,
		logger:  logger,
	}
}

// valuationState is the running accumulator for one symbol's replay.
// It is local to a single ValueSymbol call and never shared. Running
// totals carry full precision; rounding happens only at emission.
type valuationState struct {
	totalShareQuantity float64
	totalInvested      float64
	realizedProfitLoss float64
}

// ValueSymbol replays the symbol's trade history against the merged
// price series and returns the valuation summary.
func (s *Service) ValueSymbol(ctx context.Context, symbol string) (*models.SymbolValuation, error) {
	symbol = models.NormalizeSymbol(symbol)

	if symbol == "" || !s.validSymbol(symbol) {
		return nil, common.BadRequestf("Invalid symbol")
	}

	series, err := s.loadMergedSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	latest := series[len(series)-1]
	latestPrice := latest.Close
	latestPriceDate := models.DayKey(latest.Date)

	trades := selectTrades(s.trades.Trades(), symbol)

	if len(trades) == 0 {
		// Holding no position is a valid outcome; the summary still
		// carries the latest market price.
		return &models.SymbolValuation{
			Symbol:          symbol,
			LatestPrice:     latestPrice,
			LatestPriceDate: latestPriceDate,
			Trades:          []models.TradeResult{},
		}, nil
	}

	closeByDay := make(map[string]float64, len(series))
	for _, point := range series {
		closeByDay[models.DayKey(point.Date)] = point.Close
	}

	var state valuationState
	results := make([]models.TradeResult, 0, len(trades))

	for _, trade := range trades {
		day := models.DayKey(trade.day)

		price, ok := closeByDay[day]
		if !ok {
			// No market data for this day; the trade contributes nothing.
			continue
		}

		quantity := trade.ShareQuantity

		result := models.TradeResult{
			Type:          trade.Type,
			ShareQuantity: quantity,
			Date:          trade.Date,
			Price:         price,
			TotalAmount:   common.Round4(price * quantity),
		}

		switch {
		case trade.IsBuy():
			state.totalShareQuantity += quantity
			state.totalInvested += quantity * price

		case trade.IsSell():
			if quantity > state.totalShareQuantity {
				return nil, common.BadRequestf(
					"Invalid trade, attempting to sell more shares than what is owned on %s", day)
			}

			averageBuyPrice := state.totalInvested / state.totalShareQuantity
			profitLoss := (price - averageBuyPrice) * quantity

			state.totalShareQuantity -= quantity
			// Re-base invested from the unchanged average cost so a
			// partial sale never shifts the cost basis of what remains.
			state.totalInvested = averageBuyPrice * state.totalShareQuantity
			state.realizedProfitLoss += profitLoss

			result.AverageBuyPrice = models.Float64Ptr(common.Round4(averageBuyPrice))
			result.TotalBuyAmount = models.Float64Ptr(common.Round4(averageBuyPrice * quantity))
			result.RealizedProfitLoss = models.Float64Ptr(common.Round4(profitLoss))

		default:
			// Unknown trade types are ignored, not errors.
			continue
		}

		results = append(results, result)
	}

	currentValue := state.totalShareQuantity * latestPrice
	averageBuyPrice := 0.0
	if state.totalShareQuantity > 0 {
		averageBuyPrice = state.totalInvested / state.totalShareQuantity
	}

	return &models.SymbolValuation{
		Symbol:               symbol,
		TotalShareQuantity:   state.totalShareQuantity,
		AverageBuyPrice:      common.Round4(averageBuyPrice),
		LatestPrice:          latestPrice,
		InvestedAmount:       common.Round4(state.totalInvested),
		CurrentValue:         common.Round4(currentValue),
		RealizedProfitLoss:   common.Round4(state.realizedProfitLoss),
		UnrealizedProfitLoss: common.Round4(currentValue - state.totalInvested),
		LatestPriceDate:      latestPriceDate,
		Trades:               results,
	}, nil
}

func (s *Service) validSymbol(symbol string) bool {
	for _, candidate := range s.symbols {
		if candidate == symbol {
			return true
		}
	}
	return false
}

// Ensure Service implements ValuationService
var _ interfaces.ValuationService = (*Service)(nil)
