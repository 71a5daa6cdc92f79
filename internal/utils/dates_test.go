package utils

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	asOf := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday today", time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC), 5},
		{"birthday tomorrow", time.Date(2021, time.September, 2, 0, 0, 0, 0, time.UTC), 4},
		{"birthday yesterday", time.Date(2021, time.August, 31, 0, 0, 0, 0, time.UTC), 5},
		{"later month", time.Date(2020, time.December, 25, 0, 0, 0, 0, time.UTC), 5},
		{"earlier month", time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC), 6},
		{"newborn", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tc := range cases {
		if got := Age(tc.birth, asOf); got != tc.want {
			t.Errorf("%s: Age = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// A Feb 29 birth date only completes its year on Mar 1 in non-leap years.
func TestAgeLeapYearBirthday(t *testing.T) {
	birth := time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)

	if got := Age(birth, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)); got != 5 {
		t.Fatalf("Feb 28 of a non-leap year: got %d, want 5", got)
	}
	if got := Age(birth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)); got != 6 {
		t.Fatalf("Mar 1 of a non-leap year: got %d, want 6", got)
	}
	if got := Age(birth, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)); got != 8 {
		t.Fatalf("leap-year birthday itself: got %d, want 8", got)
	}
}
