package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ApexDesk/internal/domain/models"
	"ApexDesk/pkg/util"
)

func newTestService(url string) *Service {
	return NewService(url, "US,EU,GB,JP,CA,CH,AU,NZ", time.Second, 15*time.Minute, nil)
}

func TestTodayParsesLiveEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("countries"); got != "US,EU,GB,JP,CA,CH,AU,NZ" {
			t.Errorf("unexpected countries param %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[
			{"id":"evt-2","title":"ISM Manufacturing PMI","country":"US","importance":2,"date":"2026-08-31T14:00:00.000Z","forecast":51.0,"previous":50.3},
			{"id":"evt-1","title":"CPI m/m","country":"DE","importance":3,"date":"2026-08-31T06:30:00.000Z","actual":"0.2%"}
		]}`))
	}))
	defer srv.Close()

	res := newTestService(srv.URL).Today(context.Background())
	if res.Source != "live" {
		t.Fatalf("expected live source, got %q", res.Source)
	}
	if res.FromCache {
		t.Fatal("first call must not be a cache hit")
	}
	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}

	// sorted by rendered time, so the 06:30Z CPI comes first
	cpi := res.Events[0]
	if cpi.Title != "CPI m/m" {
		t.Fatalf("expected CPI first after sort, got %q", cpi.Title)
	}
	if cpi.Currency != "EUR" {
		t.Fatalf("DE maps to EUR, got %q", cpi.Currency)
	}
	if cpi.Importance != models.ImportanceHigh {
		t.Fatalf("importance 3 is high, got %q", cpi.Importance)
	}
	wantTime := util.TimeHHMM(time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC))
	if cpi.Time != wantTime {
		t.Fatalf("expected Paris time %s, got %s", wantTime, cpi.Time)
	}
	if cpi.Actual == nil || *cpi.Actual != "0.2%" {
		t.Fatalf("expected actual 0.2%%, got %v", cpi.Actual)
	}
	if cpi.Forecast != nil {
		t.Fatalf("missing forecast must stay nil, got %v", cpi.Forecast)
	}

	ism := res.Events[1]
	if ism.Currency != "USD" {
		t.Fatalf("US maps to USD, got %q", ism.Currency)
	}
	if ism.Importance != models.ImportanceMedium {
		t.Fatalf("importance 2 is medium, got %q", ism.Importance)
	}
	if len(ism.ImpactsSymbols) == 0 || ism.ImpactsSymbols[0] != "EURUSD" {
		t.Fatalf("expected USD impact list, got %v", ism.ImpactsSymbols)
	}
}

func TestTodayCachesResult(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[{"id":"1","title":"NFP","country":"US","importance":3,"date":"2026-08-31T12:30:00Z"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	ctx := context.Background()

	first := svc.Today(ctx)
	second := svc.Today(ctx)
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", hits)
	}
	if first.FromCache || !second.FromCache {
		t.Fatalf("expected fromCache false then true, got %v/%v", first.FromCache, second.FromCache)
	}
	if len(second.Events) != 1 || second.Events[0].Title != "NFP" {
		t.Fatalf("cached events lost: %v", second.Events)
	}
}

func TestTodayFallsBackToMockOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	res := newTestService(srv.URL).Today(context.Background())
	if res.Source != "mock" {
		t.Fatalf("expected mock source, got %q", res.Source)
	}
	if len(res.Events) != 6 {
		t.Fatalf("expected 6 mock events, got %d", len(res.Events))
	}
	if res.Events[0].Title != "CPI m/m — EUR" {
		t.Fatalf("unexpected first mock event %q", res.Events[0].Title)
	}
}

func TestTodayFallsBackToMockWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	res := newTestService(srv.URL).Today(context.Background())
	if res.Source != "mock" {
		t.Fatalf("quiet day must serve mock, got %q", res.Source)
	}
}

func TestImpactToImportance(t *testing.T) {
	cases := []struct {
		impact float64
		want   models.Importance
	}{
		{3, models.ImportanceHigh},
		{4, models.ImportanceHigh},
		{2, models.ImportanceMedium},
		{1, models.ImportanceLow},
		{0, models.ImportanceLow},
	}
	for _, c := range cases {
		if got := impactToImportance(c.impact); got != c.want {
			t.Errorf("impact %v: expected %q, got %q", c.impact, c.want, got)
		}
	}
}
