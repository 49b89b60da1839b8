package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the status of a recorded sale. Cancellation is a
// reporting flag only; it does not reverse inventory or commission effects.
type SaleStatus int

const (
	SaleStatusActive    SaleStatus = 0
	SaleStatusCancelled SaleStatus = 1
)

func (s SaleStatus) String() string {
	switch s {
	case SaleStatusActive:
		return "active"
	case SaleStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "active":
		*s = SaleStatusActive
	case "cancelled":
		*s = SaleStatusCancelled
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}
