package usecase

import (
	"context"
	"testing"
	"time"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	svccache "ApexDesk/internal/service/cache"
)

func TestSlotNamesCoverMacroRefs(t *testing.T) {
	refs := registry.MacroRefs()
	if len(refs) != len(slotNames) {
		t.Fatalf("expected %d slot names, got %d", len(refs), len(slotNames))
	}
	for _, sym := range refs {
		if _, ok := slotNames[sym]; !ok {
			t.Fatalf("macro ref %s has no slot name", sym)
		}
	}
}

func TestAssembleFallsBackPerSlot(t *testing.T) {
	fb := newFakeBuilder()
	// everything fails except the VIX reference
	for _, sym := range []string{"DXY", "US10Y", "US500", "NAS100", "XAUUSD", "BTCUSD"} {
		fb.fail[sym] = true
	}
	svc := newTestService(fb)
	a := NewMacroAssembler(svc)

	got := a.Assemble(context.Background())

	// VIX came from the fake builder (generic snapshot, price 100)
	if got.VIX.Symbol != "VIX" || got.VIX.Price != 100 {
		t.Fatalf("expected live VIX slot, got %+v", got.VIX)
	}
	// failed slots keep the mock values
	if got.DXY.Price != 104.23 {
		t.Fatalf("expected mock DXY, got %+v", got.DXY)
	}
	if got.Gold.Price != 2318.5 {
		t.Fatalf("expected mock GOLD, got %+v", got.Gold)
	}
	if len(got.BTC.Sparkline) == 0 {
		t.Fatal("mock BTC slot must carry a sparkline")
	}
}

func TestQuoteFromSnapshotSparkline(t *testing.T) {
	snap := models.AssetSnapshot{
		Symbol:    "US500",
		Price:     5100,
		PrevClose: 5050,
		ChangePct: 0.99,
	}
	for i := 0; i < 10; i++ {
		snap.BarsD1 = append(snap.BarsD1, models.OHLCVBar{Close: float64(5000 + i)})
	}

	q := quoteFromSnapshot("SPX", snap)
	if q.Symbol != "SPX" {
		t.Fatalf("unexpected symbol %q", q.Symbol)
	}
	if len(q.Sparkline) != 7 {
		t.Fatalf("expected 7-point sparkline, got %d", len(q.Sparkline))
	}
	if q.Sparkline[6] != 5009 {
		t.Fatalf("expected newest close last, got %v", q.Sparkline[6])
	}
	if q.Change != 50 {
		t.Fatalf("expected change 50, got %v", q.Change)
	}
}

func TestMockMacroNeverEmpty(t *testing.T) {
	m := MockMacro()
	for _, q := range []models.MarketQuote{m.DXY, m.US10Y, m.VIX, m.SPX, m.NAS100, m.Gold, m.BTC} {
		if q.Symbol == "" || q.Price == 0 {
			t.Fatalf("empty mock slot %+v", q)
		}
		if len(q.Sparkline) != 7 {
			t.Fatalf("mock sparkline must have 7 points, got %d for %s", len(q.Sparkline), q.Symbol)
		}
	}
}

func TestPaceSleepHonorsContext(t *testing.T) {
	fb := newFakeBuilder()
	svc := NewSnapshotService(fb, svccache.NewTTLCache(), time.Minute, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		svc.FetchAll(ctx, []string{"EURUSD"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("FetchAll did not return on cancelled context")
	}
}
