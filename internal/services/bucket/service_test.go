package bucket

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/models"
)

func approxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// fakeValuation returns canned per-symbol valuations and tracks the
// number of calls running at once.
type fakeValuation struct {
	results map[string]*models.SymbolValuation
	errs    map[string]error

	mu        sync.Mutex
	active    int
	maxActive int
}

func (f *fakeValuation) ValueSymbol(_ context.Context, symbol string) (*models.SymbolValuation, error) {
	f.mu.Lock()
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	return f.results[symbol], nil
}

func testCatalog() *models.BucketCatalog {
	return models.NewBucketCatalog([]models.Bucket{
		{Code: "BUCKETA", Name: "Bucket A", Symbols: []string{"AAPL", "NVDA", "TSLA"}},
		{Code: "BUCKETB", Name: "Bucket B", Symbols: []string{"F", "AMD"}},
	})
}

func TestValueBucket_SumsAndPreservesOrder(t *testing.T) {
	valuation := &fakeValuation{
		results: map[string]*models.SymbolValuation{
			"AAPL": {Symbol: "AAPL", TotalShareQuantity: 10, InvestedAmount: 1000, CurrentValue: 1500, RealizedProfitLoss: 50, UnrealizedProfitLoss: 500},
			"NVDA": {Symbol: "NVDA", TotalShareQuantity: 5, InvestedAmount: 500, CurrentValue: 400, RealizedProfitLoss: 0, UnrealizedProfitLoss: -100},
			"TSLA": {Symbol: "TSLA", TotalShareQuantity: 0, InvestedAmount: 0, CurrentValue: 0},
		},
	}
	service := NewService(testCatalog(), valuation, common.NewSilentLogger())

	result, err := service.ValueBucket(context.Background(), "Bucket A")
	if err != nil {
		t.Fatalf("ValueBucket failed: %v", err)
	}

	if result.Name != "Bucket A" {
		t.Errorf("name = %q, want Bucket A", result.Name)
	}
	if !approxEqual(result.InvestedAmount, 1500, 1e-9) {
		t.Errorf("invested = %v, want 1500", result.InvestedAmount)
	}
	if !approxEqual(result.CurrentValue, 1900, 1e-9) {
		t.Errorf("current value = %v, want 1900", result.CurrentValue)
	}
	if !approxEqual(result.TotalShareQuantity, 15, 1e-9) {
		t.Errorf("quantity = %v, want 15", result.TotalShareQuantity)
	}
	if !approxEqual(result.RealizedProfitLoss, 50, 1e-9) {
		t.Errorf("realized = %v, want 50", result.RealizedProfitLoss)
	}
	if !approxEqual(result.UnrealizedProfitLoss, 400, 1e-9) {
		t.Errorf("unrealized = %v, want 400", result.UnrealizedProfitLoss)
	}
	// avg buy = 1500/15, latest = 1900/15
	if !approxEqual(result.AverageBuyPrice, 100, 1e-9) {
		t.Errorf("avg buy price = %v, want 100", result.AverageBuyPrice)
	}
	if !approxEqual(result.LatestPrice, 126.6667, 1e-9) {
		t.Errorf("latest price = %v, want 126.6667", result.LatestPrice)
	}

	if len(result.ProfitLosses) != 3 {
		t.Fatalf("breakdown has %d entries, want 3", len(result.ProfitLosses))
	}
	for i, want := range []string{"AAPL", "NVDA", "TSLA"} {
		if result.ProfitLosses[i].Symbol != want {
			t.Errorf("breakdown[%d] = %q, want %q", i, result.ProfitLosses[i].Symbol, want)
		}
	}
}

func TestValueBucket_SymbolFailureBecomesErrorEntry(t *testing.T) {
	valuation := &fakeValuation{
		results: map[string]*models.SymbolValuation{
			"F": {Symbol: "F", TotalShareQuantity: 2, InvestedAmount: 20, CurrentValue: 30, UnrealizedProfitLoss: 10},
		},
		errs: map[string]error{
			"AMD": common.NotFoundf("Failed to get historical price data for AMD"),
		},
	}
	service := NewService(testCatalog(), valuation, common.NewSilentLogger())

	result, err := service.ValueBucket(context.Background(), "bucket b")
	if err != nil {
		t.Fatalf("ValueBucket failed: %v", err)
	}

	if len(result.ProfitLosses) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(result.ProfitLosses))
	}

	ok := result.ProfitLosses[0]
	if ok.Symbol != "F" || ok.Error != "" || ok.UnrealizedProfitLoss == nil {
		t.Errorf("success entry = %+v", ok)
	}

	failed := result.ProfitLosses[1]
	if failed.Symbol != "AMD" || failed.Error == "" {
		t.Errorf("error entry = %+v", failed)
	}
	if failed.RealizedProfitLoss != nil || failed.UnrealizedProfitLoss != nil {
		t.Errorf("error entry carries profit figures: %+v", failed)
	}

	// Totals come from successes only.
	if !approxEqual(result.InvestedAmount, 20, 1e-9) {
		t.Errorf("invested = %v, want 20", result.InvestedAmount)
	}
	if !approxEqual(result.CurrentValue, 30, 1e-9) {
		t.Errorf("current value = %v, want 30", result.CurrentValue)
	}
}

func TestValueBucket_UnknownName(t *testing.T) {
	service := NewService(testCatalog(), &fakeValuation{}, common.NewSilentLogger())

	_, err := service.ValueBucket(context.Background(), "nope")
	if !common.IsBadRequest(err) {
		t.Fatalf("err = %v, want bad request", err)
	}
}

func TestValueBucket_EmptyPosition(t *testing.T) {
	valuation := &fakeValuation{
		results: map[string]*models.SymbolValuation{
			"F":   {Symbol: "F"},
			"AMD": {Symbol: "AMD"},
		},
	}
	service := NewService(testCatalog(), valuation, common.NewSilentLogger())

	result, err := service.ValueBucket(context.Background(), "BUCKETB")
	if err != nil {
		t.Fatalf("ValueBucket failed: %v", err)
	}

	// No shares held: derived prices stay zero instead of dividing by zero.
	if result.AverageBuyPrice != 0 || result.LatestPrice != 0 {
		t.Errorf("derived prices = %v/%v, want 0/0", result.AverageBuyPrice, result.LatestPrice)
	}
}

func TestValueBucket_ConcurrencyBounded(t *testing.T) {
	symbols := make([]string, 20)
	results := make(map[string]*models.SymbolValuation, len(symbols))
	for i := range symbols {
		symbols[i] = string(rune('A' + i))
		results[symbols[i]] = &models.SymbolValuation{Symbol: symbols[i]}
	}

	catalog := models.NewBucketCatalog([]models.Bucket{
		{Code: "WIDE", Name: "Wide", Symbols: symbols},
	})
	valuation := &fakeValuation{results: results}
	service := NewService(catalog, valuation, common.NewSilentLogger())

	if _, err := service.ValueBucket(context.Background(), "WIDE"); err != nil {
		t.Fatalf("ValueBucket failed: %v", err)
	}

	if valuation.maxActive > maxConcurrentValuations {
		t.Errorf("max concurrent valuations = %d, want <= %d", valuation.maxActive, maxConcurrentValuations)
	}
}
