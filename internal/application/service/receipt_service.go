package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
	"github.com/studiopos/salon-api/pkg/printer"
)

// ReceiptFooter is printed at the bottom of every receipt.
const ReceiptFooter = "¡Gracias por su preferencia!"

// ReceiptService composes receipts from sales and renders them for the
// browser print dialog and for thermal printing. Both renderings carry the
// same informational content.
type ReceiptService struct {
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	printerType  string
	tmpl         *template.Template
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		printerType:  printerType,
		tmpl:         template.Must(template.New("receipt").Parse(receiptHTML)),
	}
}

// BuildReceipt composes a printable receipt from a sale and the current
// receipt settings. Every monetary field is formatted here so the HTML and
// ESC/POS renderers stay in agreement.
func (s *ReceiptService) BuildReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := entity.DefaultReceiptSettings()
		settings = &defaults
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			Name:     settings.BusinessName,
			Subtitle: settings.BusinessSubtitle,
		},
		InvoiceNumber: fmt.Sprintf("Factura #%06d", sale.InvoiceNumber),
		Date:          FormatSpanishDate(sale.Date),
		ClientName:    sale.ClientName,
		Subtotal:      FormatCurrency(sale.Subtotal),
		Total:         FormatCurrency(sale.Total),
		PaymentMethod: sale.PaymentMethod.Label(),
		Footer:        ReceiptFooter,
	}

	if settings.BusinessAddress != nil {
		receipt.Header.Address = *settings.BusinessAddress
	}
	if settings.BusinessPhone != nil {
		receipt.Header.Phone = *settings.BusinessPhone
	}
	if settings.BusinessEmail != nil {
		receipt.Header.Email = *settings.BusinessEmail
	}
	if sale.ClientCode != nil {
		receipt.ClientCode = *sale.ClientCode
	}
	if sale.Reference != nil {
		receipt.Reference = *sale.Reference
	}

	// The discount line appears only when a discount was applied, shown
	// as a negative amount.
	if sale.Discount > 0 {
		receipt.Discount = FormatCurrency(-sale.Discount)
	}

	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: FormatCurrency(item.Price),
			Total:     FormatCurrency(item.Total),
		})
	}

	return receipt, nil
}

// RenderHTML renders a receipt as an HTML page sized for the configured
// paper, ready for the browser print dialog.
func (s *ReceiptService) RenderHTML(ctx context.Context, saleID uuid.UUID) ([]byte, error) {
	receipt, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := entity.DefaultReceiptSettings()
		settings = &defaults
	}
	settings.ClampWidth()

	var buf bytes.Buffer
	data := struct {
		Receipt  *entity.Receipt
		Settings *entity.ReceiptSettings
	}{receipt, settings}

	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrintReceipt formats a receipt as ESC/POS and sends it to the configured
// thermal printer. The composed receipt is returned either way so the
// caller can fall back to the HTML rendering when no printer is attached.
func (s *ReceiptService) PrintReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt to the printer.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			Name:     "PRUEBA DE IMPRESORA",
			Subtitle: "Página de prueba",
		},
		InvoiceNumber: "Factura #000000",
		Date:          "Fecha de prueba",
		Items: []entity.ReceiptItem{
			{Name: "Artículo 1", Quantity: 1, UnitPrice: "C$10.00", Total: "C$10.00"},
			{Name: "Artículo 2", Quantity: 2, UnitPrice: "C$5.00", Total: "C$10.00"},
		},
		Subtotal:      "C$20.00",
		Total:         "C$20.00",
		PaymentMethod: "Efectivo",
		Footer:        ReceiptFooter,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(printer.DefaultWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(r.Header.Subtitle)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.Email != "" {
		doc.Text(r.Header.Email)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.Text(r.InvoiceNumber).
		Text(r.Date)

	if r.ClientName != "" {
		doc.KeyValue("Cliente:", r.ClientName)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.Row(item.Name, fmt.Sprintf("%d", item.Quantity), item.UnitPrice, item.Total)
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", r.Subtotal)
	if r.Discount != "" {
		doc.KeyValue("Descuento:", r.Discount)
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total).
		SetBold(false)

	doc.KeyValue("Pago:", r.PaymentMethod)
	if r.Reference != "" {
		doc.KeyValue("Referencia:", r.Reference)
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(r.Footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

const receiptHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Receipt.InvoiceNumber}}</title>
<style>
  @page { size: {{.Settings.PaperWidth}}mm {{.Settings.PaperHeight}}mm; margin: 0; }
  body {
    width: {{.Settings.PaperWidth}}mm;
    margin: 0 auto;
    padding: 4mm;
    font-family: "Courier New", monospace;
    font-size: {{.Settings.BodyFontSize}}pt;
    color: #000;
  }
  .title { font-size: {{.Settings.TitleFontSize}}pt; font-weight: bold; text-align: center; }
  .subtitle { font-size: {{.Settings.SubtitleFontSize}}pt; text-align: center; }
  .center { text-align: center; }
  .sep { border-top: 1px dashed #000; margin: 2mm 0; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 0.5mm 0; vertical-align: top; }
  .num { text-align: right; white-space: nowrap; }
  .totals td { font-weight: normal; }
  .grand td { font-weight: bold; }
  .footer { margin-top: 3mm; text-align: center; }
</style>
</head>
<body>
  <div class="title">{{.Receipt.Header.Name}}</div>
  <div class="subtitle">{{.Receipt.Header.Subtitle}}</div>
  {{if .Receipt.Header.Address}}<div class="center">{{.Receipt.Header.Address}}</div>{{end}}
  {{if .Receipt.Header.Phone}}<div class="center">{{.Receipt.Header.Phone}}</div>{{end}}
  {{if .Receipt.Header.Email}}<div class="center">{{.Receipt.Header.Email}}</div>{{end}}
  <div class="sep"></div>
  <div>{{.Receipt.InvoiceNumber}}</div>
  <div>{{.Receipt.Date}}</div>
  {{if .Receipt.ClientName}}<div>Cliente: {{.Receipt.ClientName}}</div>{{end}}
  <div class="sep"></div>
  <table>
    {{range .Receipt.Items}}
    <tr>
      <td>{{.Name}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.Total}}</td>
    </tr>
    {{end}}
  </table>
  <div class="sep"></div>
  <table>
    <tr class="totals"><td>Subtotal</td><td class="num">{{.Receipt.Subtotal}}</td></tr>
    {{if .Receipt.Discount}}<tr class="totals"><td>Descuento</td><td class="num">{{.Receipt.Discount}}</td></tr>{{end}}
    <tr class="grand"><td>TOTAL</td><td class="num">{{.Receipt.Total}}</td></tr>
    <tr class="totals"><td>Pago</td><td class="num">{{.Receipt.PaymentMethod}}</td></tr>
    {{if .Receipt.Reference}}<tr class="totals"><td>Referencia</td><td class="num">{{.Receipt.Reference}}</td></tr>{{end}}
  </table>
  <div class="footer">{{.Receipt.Footer}}</div>
</body>
</html>
`
