package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountKind represents how a document-level discount value is interpreted
type DiscountKind int

const (
	DiscountKindPercent DiscountKind = 0
	DiscountKindAmount  DiscountKind = 1
)

func (k DiscountKind) String() string {
	if k == DiscountKindAmount {
		return "amount"
	}
	return "percent"
}

func (k DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DiscountKind(i)
		return nil
	}
	switch str {
	case "amount":
		*k = DiscountKindAmount
	case "percent", "percentage":
		*k = DiscountKindPercent
	}
	return nil
}

func (k DiscountKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DiscountKind) Scan(value interface{}) error {
	if value == nil {
		*k = DiscountKindPercent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DiscountKind(v)
	case int:
		*k = DiscountKind(v)
	}
	return nil
}
