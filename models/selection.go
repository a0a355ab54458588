package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Selections maps a customization ID to the chosen values. Single-choice
// and free-text customizations carry exactly one value, multi-choice may
// carry several.
type Selections map[string][]string

// keyEscaper escapes the join delimiters inside keys and values, so
// free text containing ";" or "=" cannot collide with a structurally
// different selection set.
var keyEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, "=", `\=`, ",", `\,`)

// CanonicalKey serializes the selections into a stable string: keys are
// sorted, value sets are sorted, and free text is trimmed. Two selections
// that pick the same options in a different order therefore produce the
// same key, which is what decides whether two cart lines merge.
func (s Selections) CanonicalKey() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		vals := make([]string, 0, len(s[k]))
		for _, v := range s[k] {
			vals = append(vals, keyEscaper.Replace(strings.TrimSpace(v)))
		}
		sort.Strings(vals)
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(keyEscaper.Replace(k))
		b.WriteByte('=')
		b.WriteString(strings.Join(vals, ","))
	}
	return b.String()
}

// Clone returns a deep copy
func (s Selections) Clone() Selections {
	if s == nil {
		return nil
	}
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Value implements driver.Valuer so selections persist as a JSON column
func (s Selections) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal selections: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner
func (s *Selections) Scan(value any) error {
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
		return errors.New("selections: unsupported column type")
	}
	if len(raw) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(raw, s)
}
