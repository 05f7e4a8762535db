package utils

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2025-08-15",
			want:  time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong layout",
			input:   "15/08/2025",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseISODate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISODate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseISODate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseISODate(%q) location = %v, want UTC", tt.input, got.Location())
			}
		})
	}
}

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2025, 8, 15, 17, 42, 13, 999, time.UTC)
	want := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	if got := BeginningOfDay(in); !got.Equal(want) {
		t.Errorf("BeginningOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2025-08-15", "2025-08-15", 0},
		{"one day", "2025-08-15", "2025-08-16", 1},
		{"full month", "2025-08-01", "2025-09-01", 31},
		{"across a month boundary", "2025-08-01", "2025-09-02", 32},
		{"reversed is negative", "2025-08-16", "2025-08-15", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseISODate(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			end, err := ParseISODate(tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if got := DaysBetween(start, end); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
