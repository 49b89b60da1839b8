package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseStatus represents the status of an expense record.
type ExpenseStatus int

const (
	ExpenseStatusActive    ExpenseStatus = 0
	ExpenseStatusCancelled ExpenseStatus = 1
)

func (s ExpenseStatus) String() string {
	switch s {
	case ExpenseStatusActive:
		return "active"
	case ExpenseStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s ExpenseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ExpenseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ExpenseStatus(i)
		return nil
	}
	switch str {
	case "active":
		*s = ExpenseStatusActive
	case "cancelled":
		*s = ExpenseStatusCancelled
	}
	return nil
}

func (s ExpenseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ExpenseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ExpenseStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ExpenseStatus(v)
	case int:
		*s = ExpenseStatus(v)
	}
	return nil
}
