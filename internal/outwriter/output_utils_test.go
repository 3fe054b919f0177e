package outwriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHour12(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		expected string
	}{
		{name: "midnight", hour: 0, expected: "12 AM"},
		{name: "morning", hour: 8, expected: "08 AM"},
		{name: "late morning", hour: 11, expected: "11 AM"},
		{name: "noon", hour: 12, expected: "12 PM"},
		{name: "afternoon", hour: 17, expected: "05 PM"},
		{name: "last hour", hour: 23, expected: "11 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHour12(tt.hour))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{name: "zero", count: 0, expected: "0"},
		{name: "below separator", count: 999, expected: "999"},
		{name: "thousands", count: 61110, expected: "61,110"},
		{name: "hundred thousands", count: 300000, expected: "300,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.count))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0:00:00"},
		{name: "sub-second rounds up", duration: 700 * time.Millisecond, expected: "0:00:01"},
		{name: "sub-second rounds down", duration: 400 * time.Millisecond, expected: "0:00:00"},
		{name: "minutes", duration: 932 * time.Second, expected: "0:15:32"},
		{name: "whole hour", duration: time.Hour, expected: "1:00:00"},
		{name: "single day", duration: 26*time.Hour + 3*time.Minute + 5*time.Second, expected: "1 day, 2:03:05"},
		{name: "several days", duration: 74*time.Hour + 15*time.Minute + 30*time.Second, expected: "3 days, 2:15:30"},
		{name: "season of riding", duration: 2400 * time.Hour, expected: "100 days, 0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
