package quiz

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// QuestionList maps the embedded question sequence onto a jsonb column.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// StringList maps the tag sequence onto a jsonb column. Duplicates are kept
// as given; the model does not deduplicate.
type StringList = datatypes.JSONSlice[string]

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan type %T into %T", value, dst)
	}
}
