package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Window is a single [start, end) availability interval within one day.
// Start and End are "HH:MM" strings; an instant exactly at Start is
// inside the window, exactly at End is outside. Windows must not cross
// midnight. "24:00" is accepted as End to express end-of-day.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaypartingSchedule maps lowercase weekday names ("monday".."sunday")
// to ordered, non-overlapping windows. A missing or empty weekday means
// the campaign is unavailable that whole day. A nil schedule means no
// restriction at all.
type DaypartingSchedule map[string][]Window

// ParseSchedule decodes a JSON schedule blob. Callers should treat a
// parse error as "no restriction" rather than failing the campaign.
func ParseSchedule(raw []byte) (DaypartingSchedule, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s DaypartingSchedule
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Allows reports whether t falls inside one of the windows configured
// for t's weekday. Windows whose bounds fail to parse, or where end is
// not after start, are skipped.
func (s DaypartingSchedule) Allows(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	minute := t.Hour()*60 + t.Minute()
	for _, w := range s[day] {
		start, ok := parseMinuteOfDay(w.Start)
		if !ok {
			continue
		}
		end, ok := parseMinuteOfDay(w.End)
		if !ok || end <= start {
			continue
		}
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

// parseMinuteOfDay converts "HH:MM" into minutes since midnight.
// "24:00" maps to 1440 so a window may extend to end-of-day.
func parseMinuteOfDay(v string) (int, bool) {
	if len(v) != 5 || v[2] != ':' {
		return 0, false
	}
	h, ok := parseTwoDigits(v[:2])
	if !ok || h > 24 {
		return 0, false
	}
	m, ok := parseTwoDigits(v[3:])
	if !ok || m > 59 {
		return 0, false
	}
	if h == 24 && m != 0 {
		return 0, false
	}
	return h*60 + m, true
}

func parseTwoDigits(v string) (int, bool) {
	if v[0] < '0' || v[0] > '9' || v[1] < '0' || v[1] > '9' {
		return 0, false
	}
	return int(v[0]-'0')*10 + int(v[1]-'0'), true
}
