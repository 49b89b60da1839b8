package service

import (
	"context"
	"testing"

	"github.com/studiopos/salon-api/internal/domain/entity"
)

func TestGetSettingsCreatesDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.BusinessName != "Salón de Belleza" {
		t.Fatalf("business name = %q", settings.BusinessName)
	}
	if settings.PaperWidth != entity.ReceiptPaperWidthMM {
		t.Fatalf("paper width = %d, want %d", settings.PaperWidth, entity.ReceiptPaperWidthMM)
	}
	if repo.settings == nil {
		t.Fatal("defaults must be persisted on first read")
	}
}

func TestGetSettingsClampsStoredWidth(t *testing.T) {
	stored := entity.DefaultReceiptSettings()
	stored.PaperWidth = 58
	repo := &fakeSettingsRepo{settings: &stored}
	svc := NewSettingsService(repo)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.PaperWidth != entity.ReceiptPaperWidthMM {
		t.Fatalf("paper width = %d, want clamped to %d", settings.PaperWidth, entity.ReceiptPaperWidthMM)
	}
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	name := "Salón Bella Vista"
	phone := "8888-1234"
	height := 200
	updated, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		BusinessName:  &name,
		BusinessPhone: &phone,
		PaperHeight:   &height,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.BusinessName != name {
		t.Fatalf("business name = %q", updated.BusinessName)
	}
	if updated.BusinessPhone == nil || *updated.BusinessPhone != phone {
		t.Fatal("business phone not updated")
	}
	if updated.PaperHeight != height {
		t.Fatalf("paper height = %d, want %d", updated.PaperHeight, height)
	}
	// Untouched fields keep their defaults.
	if updated.BusinessSubtitle != "Estética y Cuidado Personal" {
		t.Fatalf("subtitle changed unexpectedly: %q", updated.BusinessSubtitle)
	}

	empty := ""
	if _, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{BusinessName: &empty}); err == nil {
		t.Fatal("expected error for empty business name")
	}
	bad := 0
	if _, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{PaperHeight: &bad}); err == nil {
		t.Fatal("expected error for non-positive paper height")
	}
}
