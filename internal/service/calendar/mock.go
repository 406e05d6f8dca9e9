package calendar

import "ApexDesk/internal/domain/models"

func strp(s string) *string { return &s }

// mockEvents is the deterministic fallback dataset served when the live
// calendar is unreachable or empty for the day.
func mockEvents() []models.CalendarEvent {
	return []models.CalendarEvent{
		{ID: "1", Time: "08:30", Currency: "EUR", Importance: models.ImportanceMedium, Title: "CPI m/m — EUR", Forecast: strp("0.4%"), Previous: strp("0.3%"), Actual: strp("0.2%"), ImpactsSymbols: []string{"EURUSD"}},
		{ID: "2", Time: "10:00", Currency: "USD", Importance: models.ImportanceHigh, Title: "NFP Report — USD", Forecast: strp("210K"), Previous: strp("187K"), ImpactsSymbols: []string{"EURUSD", "US500", "NAS100"}},
		{ID: "3", Time: "12:30", Currency: "USD", Importance: models.ImportanceHigh, Title: "Fed Chair Powell Speech", ImpactsSymbols: []string{"US500", "NAS100", "XAUUSD"}},
		{ID: "4", Time: "14:00", Currency: "USD", Importance: models.ImportanceMedium, Title: "ISM Manufacturing PMI", Forecast: strp("51.0"), Previous: strp("50.3"), ImpactsSymbols: []string{"US500"}},
		{ID: "5", Time: "15:30", Currency: "USD", Importance: models.ImportanceLow, Title: "Crude Oil Inventories", ImpactsSymbols: []string{}},
		{ID: "6", Time: "20:00", Currency: "USD", Importance: models.ImportanceHigh, Title: "FOMC Meeting Minutes", ImpactsSymbols: []string{"US500", "NAS100", "EURUSD", "XAUUSD"}},
	}
}
