package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ToCents converts a decimal amount to cents, rounding to the nearest cent.
// Plain int64(x * 100) truncates, turning 4.35 into 434.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatCurrency renders an amount in cents as córdobas with a thousands
// separator and two decimals, e.g. "C$1,234.56".
func FormatCurrency(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sC$%s.%02d", sign, b.String(), frac)
}

// FormatSpanishDate renders a date in long Spanish form,
// e.g. "15 de marzo de 2026".
func FormatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
