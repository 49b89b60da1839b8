package entity

import "testing"

func TestClampWidth(t *testing.T) {
	settings := ReceiptSettings{PaperWidth: 58}
	settings.ClampWidth()
	if settings.PaperWidth != ReceiptPaperWidthMM {
		t.Fatalf("PaperWidth = %d, want %d", settings.PaperWidth, ReceiptPaperWidthMM)
	}
}

func TestDefaultReceiptSettings(t *testing.T) {
	defaults := DefaultReceiptSettings()
	if defaults.PaperWidth != ReceiptPaperWidthMM {
		t.Fatalf("PaperWidth = %d, want %d", defaults.PaperWidth, ReceiptPaperWidthMM)
	}
	if defaults.BusinessName == "" || defaults.BusinessSubtitle == "" {
		t.Fatal("default header must carry a name and subtitle")
	}
}
