package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/models"
)

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeLedger(t, `[
		{"symbol": "AAPL", "type": "buy", "share_quantity": 10, "date": "2025-01-01"},
		{"symbol": "NVDA", "type": "sell", "share_quantity": 2.5, "date": "2025-01-02"}
	]`)

	source, err := Load(common.NewSilentLogger(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	trades := source.Trades()
	if len(trades) != 2 {
		t.Fatalf("loaded %d trades, want 2", len(trades))
	}
	if trades[0].Symbol != "AAPL" || !trades[0].IsBuy() {
		t.Errorf("first trade = %+v", trades[0])
	}
	if trades[1].ShareQuantity != 2.5 || !trades[1].IsSell() {
		t.Errorf("second trade = %+v", trades[1])
	}
}

func TestLoad_EmptyArray(t *testing.T) {
	source, err := Load(common.NewSilentLogger(), writeLedger(t, `[]`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(source.Trades()) != 0 {
		t.Errorf("trades = %v, want empty", source.Trades())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(common.NewSilentLogger(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing ledger file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	if _, err := Load(common.NewSilentLogger(), writeLedger(t, `{broken`)); err == nil {
		t.Fatal("expected error for invalid ledger JSON")
	}
}

func TestTrades_ReturnsCopy(t *testing.T) {
	source := NewSource([]models.Trade{
		{Symbol: "AAPL", Type: "buy", ShareQuantity: 1, Date: "2025-01-01"},
	})

	trades := source.Trades()
	trades[0].Symbol = "MUTATED"

	if source.Trades()[0].Symbol != "AAPL" {
		t.Error("mutating the returned slice changed the source")
	}
}
