package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
)

type fakePrinter struct {
	jobs      [][]byte
	failure   error
	connected bool
}

func (p *fakePrinter) Print(data []byte) error {
	if p.failure != nil {
		return p.failure
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *fakePrinter) Close() error      { return nil }
func (p *fakePrinter) IsConnected() bool { return p.connected }

type receiptTestEnv struct {
	svc     *ReceiptService
	env     *saleTestEnv
	printer *fakePrinter
}

func newReceiptTestEnv() *receiptTestEnv {
	env := newSaleTestEnv()
	p := &fakePrinter{connected: true}
	settings := &fakeSettingsRepo{}
	return &receiptTestEnv{
		svc:     NewReceiptService(env.sales, settings, p, "usb"),
		env:     env,
		printer: p,
	}
}

func (e *receiptTestEnv) recordSale(t *testing.T, input *RecordSaleInput) *entity.Sale {
	t.Helper()
	sale, err := e.env.svc.RecordSale(context.Background(), input)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	return sale
}

func TestBuildReceipt(t *testing.T) {
	e := newReceiptTestEnv()
	ctx := context.Background()

	sale := e.recordSale(t, &RecordSaleInput{
		Date:          time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
		ClientName:    "Rosa Martínez",
		PaymentMethod: enum.PaymentMethodCard,
		Reference:     "AUTH-4412",
		Discount:      50,
		Items: []SaleItemInput{
			{ProductID: e.env.shampoo.ID, Quantity: 2, Price: 150},
			{ProductID: e.env.tinte.ID, Quantity: 1, Price: 1350},
		},
	})

	receipt, err := e.svc.BuildReceipt(ctx, sale.ID)
	if err != nil {
		t.Fatalf("BuildReceipt: %v", err)
	}

	if receipt.InvoiceNumber != "Factura #000001" {
		t.Fatalf("invoice = %q, want %q", receipt.InvoiceNumber, "Factura #000001")
	}
	if receipt.Date != "15 de marzo de 2026" {
		t.Fatalf("date = %q, want %q", receipt.Date, "15 de marzo de 2026")
	}
	if receipt.Subtotal != "C$1,650.00" {
		t.Fatalf("subtotal = %q, want %q", receipt.Subtotal, "C$1,650.00")
	}
	if receipt.Discount != "-C$50.00" {
		t.Fatalf("discount = %q, want %q", receipt.Discount, "-C$50.00")
	}
	if receipt.Total != "C$1,600.00" {
		t.Fatalf("total = %q, want %q", receipt.Total, "C$1,600.00")
	}
	if receipt.PaymentMethod != "Tarjeta" {
		t.Fatalf("payment = %q, want Tarjeta", receipt.PaymentMethod)
	}
	if receipt.Reference != "AUTH-4412" {
		t.Fatalf("reference = %q", receipt.Reference)
	}
	if receipt.Footer != "¡Gracias por su preferencia!" {
		t.Fatalf("footer = %q", receipt.Footer)
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(receipt.Items))
	}
	if receipt.Items[0].UnitPrice != "C$150.00" || receipt.Items[0].Total != "C$300.00" {
		t.Fatalf("item line = %+v", receipt.Items[0])
	}

	// Falls back to default business header when no settings are stored.
	if receipt.Header.Name != "Salón de Belleza" {
		t.Fatalf("header name = %q", receipt.Header.Name)
	}
}

func TestBuildReceiptOmitsDiscountWhenZero(t *testing.T) {
	e := newReceiptTestEnv()

	sale := e.recordSale(t, &RecordSaleInput{
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []SaleItemInput{{ProductID: e.env.shampoo.ID, Quantity: 1, Price: 150}},
	})

	receipt, err := e.svc.BuildReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildReceipt: %v", err)
	}
	if receipt.Discount != "" {
		t.Fatalf("discount = %q, want empty for a sale without discount", receipt.Discount)
	}
	if receipt.PaymentMethod != "Efectivo" {
		t.Fatalf("payment = %q, want Efectivo", receipt.PaymentMethod)
	}
}

func TestRenderHTMLCarriesReceiptContent(t *testing.T) {
	e := newReceiptTestEnv()

	sale := e.recordSale(t, &RecordSaleInput{
		ClientName:    "Rosa",
		PaymentMethod: enum.PaymentMethodCash,
		Discount:      10,
		Items:         []SaleItemInput{{ProductID: e.env.shampoo.ID, Quantity: 1, Price: 150}},
	})

	html, err := e.svc.RenderHTML(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := string(html)

	for _, want := range []string{
		"Factura #000001",
		"Cliente: Rosa",
		"C$150.00",
		"-C$10.00",
		"C$140.00",
		"Efectivo",
		"¡Gracias por su preferencia!",
		"size: 70mm",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
}

func TestPrintReceiptReturnsReceiptOnPrinterError(t *testing.T) {
	e := newReceiptTestEnv()
	e.printer.failure = errors.New("device unavailable")

	sale := e.recordSale(t, &RecordSaleInput{
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []SaleItemInput{{ProductID: e.env.shampoo.ID, Quantity: 1, Price: 150}},
	})

	receipt, err := e.svc.PrintReceipt(context.Background(), sale.ID)
	if err == nil {
		t.Fatal("expected printer error")
	}
	if receipt == nil {
		t.Fatal("receipt must be returned even when printing fails")
	}
}

func TestPrintReceiptSendsEscposJob(t *testing.T) {
	e := newReceiptTestEnv()

	sale := e.recordSale(t, &RecordSaleInput{
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []SaleItemInput{{ProductID: e.env.shampoo.ID, Quantity: 1, Price: 150}},
	})

	if _, err := e.svc.PrintReceipt(context.Background(), sale.ID); err != nil {
		t.Fatalf("PrintReceipt: %v", err)
	}
	if len(e.printer.jobs) != 1 {
		t.Fatalf("print jobs = %d, want 1", len(e.printer.jobs))
	}
	job := string(e.printer.jobs[0])
	if !strings.Contains(job, "Factura #000001") {
		t.Fatal("print job missing invoice line")
	}
	if !strings.Contains(job, "¡Gracias por su preferencia!") {
		t.Fatal("print job missing footer")
	}
}

func TestGetPrinterStatus(t *testing.T) {
	e := newReceiptTestEnv()

	status := e.svc.GetPrinterStatus()
	if !status.Configured || !status.Connected || status.Type != "usb" {
		t.Fatalf("status = %+v", status)
	}

	none := NewReceiptService(e.env.sales, &fakeSettingsRepo{}, &fakePrinter{}, "none")
	status = none.GetPrinterStatus()
	if status.Configured {
		t.Fatal("printer type none must report unconfigured")
	}
}
