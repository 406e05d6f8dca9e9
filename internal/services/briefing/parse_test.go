package briefing

import (
	"errors"
	"testing"
)

func TestParseBriefingPlain(t *testing.T) {
	got, err := ParseBriefing(`{"macro_summary":"ok","assets":[]}`)
	if err != nil {
		t.Fatal(err)
	}
	if got["macro_summary"] != "ok" {
		t.Fatalf("unexpected %v", got)
	}
}

func TestParseBriefingStripsFences(t *testing.T) {
	raw := "```json\n{\"generated_at\":\"08:05\"}\n```"
	got, err := ParseBriefing(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got["generated_at"] != "08:05" {
		t.Fatalf("unexpected %v", got)
	}
}

func TestParseBriefingExtractsWrappedObject(t *testing.T) {
	raw := `Voici le briefing du jour : {"macro_summary":"calme, accolade } dans une string","slot":"8h"} Bonne séance.`
	got, err := ParseBriefing(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got["slot"] != "8h" {
		t.Fatalf("unexpected %v", got)
	}
}

func TestParseBriefingInvalid(t *testing.T) {
	if _, err := ParseBriefing("désolé, pas de JSON aujourd'hui"); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if _, err := ParseBriefing(`{"unterminated": `); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestCacheKeyShape(t *testing.T) {
	if got := CacheKey("2026-08-31", "8h", nil); got != "2026-08-31_8h" {
		t.Fatalf("unexpected %q", got)
	}
	if got := CacheKey("2026-08-31", "14h", []string{"EURUSD", "NVDA"}); got != "2026-08-31_14h_EURUSD,NVDA" {
		t.Fatalf("unexpected %q", got)
	}
	// asset order is part of the key
	a := CacheKey("2026-08-31", "14h", []string{"EURUSD", "NVDA"})
	b := CacheKey("2026-08-31", "14h", []string{"NVDA", "EURUSD"})
	if a == b {
		t.Fatal("expected order-sensitive keys")
	}
}
