package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, 13, 1), New(2025, 1, 1); got != want {
		t.Errorf("New(2024, 13, 1) = %v, want %v", got, want)
	}
	if got, want := New(2024, 3, 0), New(2024, 2, 29); got != want {
		t.Errorf("New(2024, 3, 0) = %v, want %v", got, want)
	}
}

func TestMonthsBetween(t *testing.T) {
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-06-01", 5},
		{"2024-01-31", "2024-02-01", 1},
		{"2024-03-01", "2024-03-31", 0},
		{"2023-11-15", "2024-02-01", 3},
		{"2024-01-01", "2024-01-01", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.from+"_"+tc.to, func(t *testing.T) {
			if got := MonthsBetween(MustParse(tc.from), MustParse(tc.to)); got != tc.want {
				t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(MustParse("2024-01-31"), MustParse("2024-02-01")); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
	if got := DaysBetween(MustParse("2024-01-01"), MustParse("2024-12-31")); got != 365 {
		t.Errorf("DaysBetween = %d, want 365", got)
	}
}

func TestPreviousMonth(t *testing.T) {
	y, m := New(2025, time.January, 10).PreviousMonth()
	if y != 2024 || m != time.December {
		t.Errorf("PreviousMonth of January = %d-%v, want 2024-December", y, m)
	}
	y, m = New(2025, time.July, 1).PreviousMonth()
	if y != 2025 || m != time.June {
		t.Errorf("PreviousMonth of July = %d-%v, want 2025-June", y, m)
	}
}

func TestParseFormats(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2024-06-01", want: New(2024, 6, 1)},
		{input: "2024-6-1", want: New(2024, 6, 1)},
		{input: "06/01/2024", want: New(2024, 6, 1)},
		{input: "6/1/2024", want: New(2024, 6, 1)},
		{input: "not a date", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAny(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAny(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseAny(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestUS(t *testing.T) {
	if got := New(2024, 6, 1).US(); got != "06/01/2024" {
		t.Errorf("US() = %q, want %q", got, "06/01/2024")
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, 2, 29)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Errorf("Marshal() = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal() = %v, want %v", back, d)
	}
}
