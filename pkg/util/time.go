package util

import (
	"fmt"
	"math"
	"time"
)

var paris *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.FixedZone("CET", 3600)
	}
	paris = loc
}

// ParisNow returns the current wall clock in Europe/Paris, the reference
// zone for every user-facing time and cache date key.
func ParisNow() time.Time {
	return time.Now().In(paris)
}

// ParisLocation exposes the reference zone for rendering upstream instants.
func ParisLocation() *time.Location {
	return paris
}

// TodayISO returns the Paris calendar date as YYYY-MM-DD.
func TodayISO() string {
	return ParisNow().Format("2006-01-02")
}

// TimeHHMM renders t as HH:MM in Paris.
func TimeHHMM(t time.Time) string {
	return t.In(paris).Format("15:04")
}

// DayFR renders the Paris date the French long way, e.g.
// "lundi 31 août 2026".
func DayFR(t time.Time) string {
	t = t.In(paris)
	return fmt.Sprintf("%s %d %s %d",
		frWeekdays[t.Weekday()], t.Day(), frMonths[t.Month()-1], t.Year())
}

var frWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatPct renders a percentage with an explicit sign and 2 decimals,
// e.g. "+0.30%" / "-0.25%".
func FormatPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Round rounds v to the given number of fractional digits.
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
