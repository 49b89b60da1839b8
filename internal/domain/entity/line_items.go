package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LineItem is a snapshot of a sold product as it appeared on a sale.
// Price is the final unit price in cents.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// LineItems stores line item snapshots as a JSON column.
type LineItems []LineItem

func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan LineItems: %v", value)
	}
	return json.Unmarshal(bytes, l)
}

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}
