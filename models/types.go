// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of strings as a JSON column
type StringList []string

// Value implements driver.Valuer interface for database storage
func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(sl))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner interface for database retrieval
func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(sl))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(sl))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

func (StringList) GormDataType() string {
	return "json"
}

func (sl StringList) MarshalJSON() ([]byte, error) {
	if sl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(sl))
}
