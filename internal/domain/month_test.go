package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "2025-12", MonthPrefix(2025, time.December))
	assert.Equal(t, "2025-01", MonthPrefix(2025, time.January))
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantFirst string
		wantNext  string
	}{
		{
			name:      "mid-year month",
			year:      2025,
			month:     time.June,
			wantFirst: "2025-06-01",
			wantNext:  "2025-07-01",
		},
		{
			name:      "december rolls over to next year",
			year:      2025,
			month:     time.December,
			wantFirst: "2025-12-01",
			wantNext:  "2026-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, next := MonthBounds(tt.year, tt.month)

			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 30, DaysInMonth(2025, time.June))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
}
