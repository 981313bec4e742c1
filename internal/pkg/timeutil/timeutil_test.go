package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2025-03-14", false},
		{"2025-12-31", false},
		{"2025-13-01", true},
		{"2025-02-30", true},
		{"14-03-2025", true},
		{"", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDate(%q): location = %v, want UTC", tt.input, got.Location())
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
			t.Errorf("ParseDate(%q): not midnight: %v", tt.input, got)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 9, false},
		{"09:30", 9.5, false},
		{"11:45", 11.75, false},
		{"23:59", 23 + 59.0/60.0, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"12", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	if !IsWeekend(saturday) {
		t.Error("saturday should be a weekend")
	}
	if !IsWeekend(sunday) {
		t.Error("sunday should be a weekend")
	}
	if IsWeekend(monday) {
		t.Error("monday should not be a weekend")
	}
}
