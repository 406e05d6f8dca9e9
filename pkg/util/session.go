package util

import "time"

// Session names a trading-session window on the Paris clock.
type Session string

const (
	SessionAsia    Session = "asia"
	SessionLondon  Session = "london"
	SessionOverlap Session = "overlap"
	SessionNewYork Session = "newyork"
	SessionOff     Session = "off"
)

type window struct {
	startH, startM, endH, endM int
	label                      string
}

var sessions = map[Session]window{
	SessionAsia:    {0, 0, 9, 0, "Session Asie"},
	SessionLondon:  {8, 0, 17, 0, "London Open"},
	SessionOverlap: {13, 30, 17, 0, "London / NY Overlap"},
	SessionNewYork: {13, 30, 22, 0, "New York Open"},
	SessionOff:     {22, 0, 24, 0, "Hors session"},
}

var nextSession = map[Session]Session{
	SessionAsia:    SessionLondon,
	SessionLondon:  SessionOverlap,
	SessionOverlap: SessionNewYork,
	SessionNewYork: SessionOff,
	SessionOff:     SessionAsia,
}

// SessionInfo describes the active trading session and the countdown to the
// next one.
type SessionInfo struct {
	Current       Session `json:"current"`
	Label         string  `json:"label"`
	NextSession   Session `json:"nextSession"`
	NextLabel     string  `json:"nextLabel"`
	MinutesToNext int     `json:"minutesToNext"`
}

// CurrentSession resolves the active session for a Paris wall-clock time.
// Overlap wins over london/newyork during 13:30-17:00.
func CurrentSession(t time.Time) SessionInfo {
	t = t.In(paris)
	total := t.Hour()*60 + t.Minute()

	in := func(w window) bool {
		return total >= w.startH*60+w.startM && total < w.endH*60+w.endM
	}

	current := SessionOff
	switch {
	case in(sessions[SessionOverlap]):
		current = SessionOverlap
	case in(sessions[SessionLondon]):
		current = SessionLondon
	case in(sessions[SessionNewYork]):
		current = SessionNewYork
	case in(sessions[SessionAsia]):
		current = SessionAsia
	}

	next := nextSession[current]
	nw := sessions[next]
	minutes := nw.startH*60 + nw.startM - total
	if minutes < 0 {
		minutes += 24 * 60
	}

	return SessionInfo{
		Current:       current,
		Label:         sessions[current].label,
		NextSession:   next,
		NextLabel:     nw.label,
		MinutesToNext: minutes,
	}
}

// IsWeekday reports whether t falls Monday through Friday.
func IsWeekday(t time.Time) bool {
	d := t.In(paris).Weekday()
	return d >= time.Monday && d <= time.Friday
}
