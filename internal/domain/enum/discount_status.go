package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountStatus represents the lifecycle state of a staff discount.
// A discount starts Active and ends either Applied (consumed by a
// commission payment) or Cancelled (manual). Both end states are terminal.
type DiscountStatus int

const (
	DiscountStatusActive    DiscountStatus = 0
	DiscountStatusApplied   DiscountStatus = 1
	DiscountStatusCancelled DiscountStatus = 2
)

func (s DiscountStatus) String() string {
	switch s {
	case DiscountStatusActive:
		return "active"
	case DiscountStatusApplied:
		return "applied"
	case DiscountStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the discount can no longer change state.
func (s DiscountStatus) IsTerminal() bool {
	return s == DiscountStatusApplied || s == DiscountStatusCancelled
}

func (s DiscountStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DiscountStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DiscountStatus(i)
		return nil
	}
	switch str {
	case "active":
		*s = DiscountStatusActive
	case "applied":
		*s = DiscountStatusApplied
	case "cancelled":
		*s = DiscountStatusCancelled
	}
	return nil
}

func (s DiscountStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DiscountStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DiscountStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DiscountStatus(v)
	case int:
		*s = DiscountStatus(v)
	}
	return nil
}
