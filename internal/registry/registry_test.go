package registry

import (
	"reflect"
	"testing"

	"ApexDesk/internal/domain/models"
)

func TestAllReturnsFullWatchlist(t *testing.T) {
	all := All()
	if len(all) != 48 {
		t.Fatalf("expected 48 watchlist symbols, got %d", len(all))
	}
	if all[0] != "EURUSD" {
		t.Fatalf("expected EURUSD first, got %s", all[0])
	}

	// returned slice is a copy, mutating it must not corrupt the registry
	all[0] = "HACKED"
	if All()[0] != "EURUSD" {
		t.Fatal("All must return a defensive copy")
	}
}

func TestResolveNormalizesInput(t *testing.T) {
	e, ok := Resolve("  nvda ")
	if !ok {
		t.Fatal("expected NVDA to resolve")
	}
	if e.Symbol != "NVDA" || e.Yahoo != "NVDA" || e.AssetType != models.AssetStock {
		t.Fatalf("unexpected entry %+v", e)
	}

	if _, ok := Resolve("BOGUS"); ok {
		t.Fatal("unknown symbol must not resolve")
	}
}

func TestResolveMacroRefs(t *testing.T) {
	refs := MacroRefs()
	want := []string{"DXY", "US10Y", "VIX", "US500", "NAS100", "XAUUSD", "BTCUSD"}
	if !reflect.DeepEqual(refs, want) {
		t.Fatalf("unexpected refs order %v", refs)
	}

	for _, sym := range refs {
		e, ok := Resolve(sym)
		if !ok || !e.HasYahoo {
			t.Fatalf("macro ref %s must resolve with an upstream ticker", sym)
		}
	}

	dxy, _ := Resolve("DXY")
	if dxy.Yahoo != "DX-Y.NYB" {
		t.Fatalf("unexpected DXY ticker %s", dxy.Yahoo)
	}
	if dxy.HasTV {
		t.Fatal("macro-only refs have no chart preset")
	}
}

func TestFilterDropsUnknownAndKeepsOrder(t *testing.T) {
	got := Filter([]string{" eurusd", "BOGUS", "", "Nvda", "xauusd"})
	want := []string{"EURUSD", "NVDA", "XAUUSD"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if out := Filter(nil); out != nil {
		t.Fatalf("empty input filters to nil, got %v", out)
	}
}

func TestWatchlistEntriesAreComplete(t *testing.T) {
	for _, sym := range All() {
		e, ok := Resolve(sym)
		if !ok {
			t.Fatalf("watchlist symbol %s must resolve", sym)
		}
		if e.Yahoo == "" {
			t.Errorf("%s has no upstream ticker", sym)
		}
		if e.AssetType == "" {
			t.Errorf("%s has no asset type", sym)
		}
		if !e.HasTV || e.TV == "" {
			t.Errorf("%s has no chart preset", sym)
		}
	}
}
