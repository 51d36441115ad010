package pdx

import (
	"strings"
	"testing"
)

var testLoc = FileLocation{Path: "test.txt", Line: 1}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		year  uint16
		month uint8
		day   uint8
	}{
		{"1066.9.14", 1066, 9, 14},
		{"867.1.1", 867, 1, 1},
		{"0.0.0", 0, 0, 0},
		{"65535.255.255", 65535, 255, 255},
		{"01066.09.014", 1066, 9, 14},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input, testLoc)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if d.Year() != tt.year || d.Month() != tt.month || d.Day() != tt.day {
				t.Errorf("got %d.%d.%d, want %d.%d.%d",
					d.Year(), d.Month(), d.Day(), tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestParseDateBounds(t *testing.T) {
	tests := []struct {
		input string
		field string
		value string
		max   string
	}{
		{"70000.1.1", "year", "70000", "65535"},
		{"65536.1.1", "year", "65536", "65535"},
		{"1066.256.1", "month", "256", "255"},
		{"1066.9.999", "day", "999", "255"},
		{"99999999999999999999.1.1", "year", "99999999999999999999", "65535"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input, testLoc)
			if err == nil {
				t.Fatalf("ParseDate(%q) succeeded, want bounds error", tt.input)
			}
			msg := err.Error()
			for _, part := range []string{tt.field, tt.value, tt.max, "test.txt"} {
				if !strings.Contains(msg, part) {
					t.Errorf("error %q does not mention %q", msg, part)
				}
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	ordered := []Date{
		NewDate(867, 1, 1),
		NewDate(1066, 9, 14),
		NewDate(1066, 9, 15),
		NewDate(1066, 10, 1),
		NewDate(1067, 1, 1),
	}

	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Less(ordered[j])
			if want := i < j; got != want {
				t.Errorf("%v.Less(%v) = %v, want %v", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestDateString(t *testing.T) {
	if s := NewDate(1066, 9, 14).String(); s != "1066.9.14" {
		t.Errorf("got %q, want 1066.9.14", s)
	}
}
