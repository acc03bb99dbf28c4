package main

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"12:00", 43200, true},
		{"23:59", 86340, true},
		{"7:05", 25500, true},
		{" 06:30 ", 23400, true},
		{"24:00", 0, true},
		{"", 0, false},
		{"noon", 0, false},
		{"12", 0, false},
		{"12:xx", 0, false},
		{"-1:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTimeOfDay(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSecondsSinceMidnight(t *testing.T) {
	now := time.Date(2024, 3, 1, 13, 45, 30, 0, time.Local)
	if got := secondsSinceMidnight(now); got != 13*3600+45*60+30 {
		t.Errorf("Expected %d, got %d", 13*3600+45*60+30, got)
	}
}
