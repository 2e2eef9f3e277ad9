package worklog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kochan17/taskdash/internal/domain"
)

// SessionHours returns the logged hours of one session. The stored duration
// may be a clock value like "7:30" (hours plus minutes) or a day-fraction
// numeric like "0.3125"; both normalize to the same hour unit. When no
// duration is stored, it falls back to end minus start.
func SessionHours(s domain.Session) float64 {
	if raw := strings.TrimSpace(s.Duration); raw != "" {
		return parseHours(raw)
	}

	if s.Start != "" && s.End != "" {
		start, okStart := parseClock(s.Start)
		end, okEnd := parseClock(s.End)
		if okStart && okEnd && end > start {
			return end - start
		}
	}

	return 0
}

func parseHours(raw string) float64 {
	if strings.Contains(raw, ":") {
		if h, ok := parseClock(raw); ok {
			return h
		}
		return 0
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return 0
	}
	// Bare numerics are day fractions, the way spreadsheets store durations.
	return f * 24
}

// parseClock parses "H:MM" into fractional hours.
func parseClock(raw string) (float64, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// FormatHoursMinutes renders fractional hours as 「X時間Y分」.
func FormatHoursMinutes(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	switch {
	case h == 0 && m == 0:
		return "0分"
	case h == 0:
		return fmt.Sprintf("%d分", m)
	case m == 0:
		return fmt.Sprintf("%d時間", h)
	default:
		return fmt.Sprintf("%d時間%d分", h, m)
	}
}
