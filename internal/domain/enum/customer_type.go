package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType distinguishes GST-registered business customers from
// individual (unregistered) ones. Earlier data used a B2B/B2C vocabulary for
// the same split; both spellings are accepted on input and normalized here.
type CustomerType int

const (
	CustomerTypeIndividual CustomerType = 0
	CustomerTypeBusiness   CustomerType = 1
)

func (t CustomerType) String() string {
	if t == CustomerTypeBusiness {
		return "business"
	}
	return "individual"
}

// DisplayLabel is the label printed on documents.
func (t CustomerType) DisplayLabel() string {
	if t == CustomerTypeBusiness {
		return "B2B"
	}
	return "B2C"
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CustomerType(i)
		return nil
	}
	switch str {
	case "business", "B2B":
		*t = CustomerTypeBusiness
	case "individual", "B2C":
		*t = CustomerTypeIndividual
	}
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeIndividual
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CustomerType(v)
	case int:
		*t = CustomerType(v)
	}
	return nil
}
