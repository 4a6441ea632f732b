package domain

import (
	"fmt"
	"strings"
)

// Weekday is a repeat-day marker.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// AllWeekdays lists the markers in calendar order starting on Monday.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts full names or three-letter abbreviations, in any case.
func ParseWeekday(s string) (Weekday, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for _, day := range AllWeekdays {
		if token == string(day) || (len(token) == 3 && strings.HasPrefix(string(day), token)) {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// ParseWeekdays parses a comma-separated list. Order and duplicates are kept.
// An empty string yields an empty, non-nil slice.
func ParseWeekdays(csv string) ([]Weekday, error) {
	days := []Weekday{}
	if strings.TrimSpace(csv) == "" {
		return days, nil
	}
	for _, part := range strings.Split(csv, ",") {
		day, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// JoinWeekdays renders days as a comma-separated list.
func JoinWeekdays(days []Weekday) string {
	parts := make([]string, len(days))
	for i, day := range days {
		parts[i] = string(day)
	}
	return strings.Join(parts, ",")
}
