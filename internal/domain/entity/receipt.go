package entity

// ReceiptHeader holds the business header printed at the top of a receipt.
// Address, Phone and Email lines are rendered only when present.
type ReceiptHeader struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ReceiptItem represents a single line item on a receipt. Amounts are
// already formatted for display.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// Receipt is a value object representing a printable receipt, not a
// database entity. It is composed from a sale and the receipt settings at
// print time, with every field already formatted so the HTML and thermal
// renderers carry identical informational content.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	InvoiceNumber string        `json:"invoice_number"` // zero-padded to 6 digits
	Date          string        `json:"date"`           // long-form Spanish date
	ClientName    string        `json:"client_name"`
	ClientCode    string        `json:"client_code,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount,omitempty"` // empty when the sale had no discount
	Total         string        `json:"total"`
	PaymentMethod string        `json:"payment_method"` // customer-facing label
	Reference     string        `json:"reference,omitempty"`
	Footer        string        `json:"footer"`
}
