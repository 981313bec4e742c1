package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full day spans lunch", "09:00", "18:00", 8.0},
		{"morning only, no lunch overlap", "08:00", "11:00", 3.0},
		{"entirely inside lunch window", "11:30", "12:30", 0.0},
		{"partial lunch overlap", "12:00", "13:00", 0.5},
		{"starts mid-lunch", "12:00", "18:00", 5.5},
		{"ends mid-lunch", "09:00", "12:00", 2.5},
		{"afternoon only", "13:00", "17:00", 4.0},
		{"end equals start", "09:00", "09:00", 0.0},
		{"end before start", "10:00", "09:00", 0.0},
		{"half-hour precision", "09:30", "11:00", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrainingHours(tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestTrainingHoursInvalidInput(t *testing.T) {
	_, err := TrainingHours("9:00", "18:00")
	assert.Error(t, err)

	_, err = TrainingHours("09:00", "24:30")
	assert.Error(t, err)

	_, err = TrainingHours("", "18:00")
	assert.Error(t, err)
}

func TestDailyRate(t *testing.T) {
	tests := []struct {
		name      string
		hours     float64
		isWeekend bool
		want      int64
	}{
		{"full weekday", 8, false, 100000},
		{"full weekend day", 8, true, 150000},
		{"half weekday", 4, false, 50000},
		{"half weekend day", 4, true, 75000},
		{"zero hours pay nothing", 0, false, 0},
		{"zero hours weekend", 0, true, 0},
		{"prorated weekday", 3, false, 37500},
		{"rounds to nearest hundred", 5.5, true, 103100},
		{"half-up rounding", 2.1, false, 26300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyRate(tt.hours, tt.isWeekend))
		})
	}
}
