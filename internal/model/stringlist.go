package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of URL strings as a JSON text column.
// It always serializes to an array, never null, so API clients can rely
// on images/videos being sequences.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	payload, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list failed: %w", err)
	}
	return string(payload), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported source type %T", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("unmarshal string list failed: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
