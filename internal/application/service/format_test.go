package service

import (
	"testing"
	"time"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{4.35, 435},
		{0.1, 10},
		{19.99, 1999},
		{1234.56, 123456},
		{0.005, 1}, // rounds half away from zero
		{-4.35, -435},
	}
	for _, c := range cases {
		if got := ToCents(c.amount); got != c.want {
			t.Fatalf("ToCents(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "C$0.00"},
		{5, "C$0.05"},
		{100, "C$1.00"},
		{123456, "C$1,234.56"},
		{100000000, "C$1,000,000.00"},
		{-5000, "-C$50.00"},
		{-123456, "-C$1,234.56"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.cents); got != c.want {
			t.Fatalf("FormatCurrency(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestFormatSpanishDate(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), "15 de marzo de 2026"},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1 de enero de 2026"},
		{time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC), "31 de diciembre de 2025"},
	}
	for _, c := range cases {
		if got := FormatSpanishDate(c.date); got != c.want {
			t.Fatalf("FormatSpanishDate(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}
