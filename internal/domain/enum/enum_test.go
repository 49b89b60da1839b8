package enum

import (
	"encoding/json"
	"testing"
)

func TestStringHandlesOutOfRangeValues(t *testing.T) {
	// A corrupted row can scan into any integer; rendering it must not panic.
	if got := DiscountStatus(99).String(); got != "unknown" {
		t.Fatalf("DiscountStatus(99) = %q, want unknown", got)
	}
	if got := SaleStatus(-1).String(); got != "unknown" {
		t.Fatalf("SaleStatus(-1) = %q, want unknown", got)
	}
	if got := ExpenseStatus(7).String(); got != "unknown" {
		t.Fatalf("ExpenseStatus(7) = %q, want unknown", got)
	}
	if got := PaymentMethod(42).String(); got != "unknown" {
		t.Fatalf("PaymentMethod(42) = %q, want unknown", got)
	}
	if got := PaymentMethod(42).Label(); got != "Desconocido" {
		t.Fatalf("PaymentMethod(42).Label() = %q, want Desconocido", got)
	}

	data, err := json.Marshal(DiscountStatus(99))
	if err != nil {
		t.Fatalf("marshal out-of-range status: %v", err)
	}
	if string(data) != `"unknown"` {
		t.Fatalf("marshaled = %s, want \"unknown\"", data)
	}
}

func TestPaymentMethodLabels(t *testing.T) {
	cases := []struct {
		method PaymentMethod
		label  string
	}{
		{PaymentMethodCash, "Efectivo"},
		{PaymentMethodCard, "Tarjeta"},
		{PaymentMethodTransfer, "Transferencia"},
	}
	for _, c := range cases {
		if got := c.method.Label(); got != c.label {
			t.Fatalf("%v.Label() = %q, want %q", c.method, got, c.label)
		}
	}
}
