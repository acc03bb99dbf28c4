package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/colorcycle/palette"
)

// parseTimeOfDay converts "HH:MM" (24h) to seconds since midnight
// ok is false when s is not a well-formed time
func parseTimeOfDay(s string) (secs int, ok bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 {
		return 0, false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 {
		return 0, false
	}
	return (hour*3600 + minute*60) % palette.DaySeconds, true
}

// secondsSinceMidnight returns the local wall-clock time of day
func secondsSinceMidnight(now time.Time) int {
	h, m, s := now.Clock()
	return h*3600 + m*60 + s
}
