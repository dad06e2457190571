package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Template selects one of the built-in PDF layout styles
type Template int

const (
	TemplateProfessional Template = 0
	TemplateModern       Template = 1
	TemplateMinimal      Template = 2
	TemplateDetailed     Template = 3
	TemplateGSTCompliant Template = 4
	TemplateGovernment   Template = 5
)

var templateNames = [...]string{
	"professional", "modern", "minimal", "detailed", "gst_compliant", "government",
}

func (t Template) IsValid() bool {
	return int(t) >= 0 && int(t) < len(templateNames)
}

func (t Template) String() string {
	if !t.IsValid() {
		return "professional"
	}
	return templateNames[t]
}

// ParseTemplate resolves a template name; unknown names fall back to the
// professional template.
func ParseTemplate(name string) Template {
	for i, n := range templateNames {
		if n == name {
			return Template(i)
		}
	}
	return TemplateProfessional
}

func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Template) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = Template(i)
		return nil
	}
	*t = ParseTemplate(str)
	return nil
}

func (t Template) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *Template) Scan(value interface{}) error {
	if value == nil {
		*t = TemplateProfessional
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = Template(v)
	case int:
		*t = Template(v)
	}
	return nil
}
