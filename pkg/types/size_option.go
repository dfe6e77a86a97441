package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SizeOption is one purchasable size variant as the storefront displays it.
// PriceText is the full display label the price is read from (e.g. "Medium: Rs. 1200").
type SizeOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	PriceText string `json:"price_text"`
}

// SizeOptions is stored as a JSON column on menu items.
type SizeOptions []SizeOption

// Value implements driver.Valuer.
func (s SizeOptions) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("size options: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (s *SizeOptions) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("size options: unsupported scan type %T", value)
	}

	if len(raw) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(raw, s)
}
