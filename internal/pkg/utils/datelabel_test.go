package utils

import (
	"testing"
	"time"
)

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{
			name:  "nil input",
			input: nil,
			want:  "N/A",
		},
		{
			name:  "epoch seconds",
			input: int64(1700000000),
			want:  "Nov 14, 2023",
		},
		{
			name:  "epoch seconds as float from decoded JSON",
			input: float64(1700000000),
			want:  "Nov 14, 2023",
		},
		{
			name:  "unparseable string",
			input: "not-a-date",
			want:  "N/A",
		},
		{
			name:  "empty string",
			input: "",
			want:  "N/A",
		},
		{
			name:  "rfc3339 string",
			input: "2025-11-30T08:15:00Z",
			want:  "Nov 30, 2025",
		},
		{
			name:  "date only string",
			input: "2024-03-09",
			want:  "Mar 9, 2024",
		},
		{
			name:  "time value",
			input: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
			want:  "Nov 14, 2023",
		},
		{
			name:  "zero time",
			input: time.Time{},
			want:  "N/A",
		},
		{
			name:  "unsupported type",
			input: []int{1, 2},
			want:  "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateLabel(tt.input); got != tt.want {
				t.Errorf("FormatDateLabel(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateLabelUsesUTCCalendarDay(t *testing.T) {
	// 1700000000 is 2023-11-14 22:13:20 UTC, already Nov 15 in zones east of
	// UTC+02. The label must stay on the UTC day regardless of server zone.
	if got := FormatDateLabel(int64(1700000000)); got != "Nov 14, 2023" {
		t.Errorf("FormatDateLabel() = %q, want UTC day %q", got, "Nov 14, 2023")
	}
}

func TestEpochToISO(t *testing.T) {
	if got := EpochToISO(1700000000); got != "2023-11-14T22:13:20Z" {
		t.Errorf("EpochToISO() = %q, want %q", got, "2023-11-14T22:13:20Z")
	}
}
