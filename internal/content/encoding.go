package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Write payloads arrive either as plain JSON bodies or as multipart forms
// where every value is a string (and structured values are JSON-encoded
// strings). The wrapper types here resolve both shapes once, at the input
// boundary, so handlers never re-implement the string-or-structure check.

// Encoded accepts either a native JSON value of type T or a JSON string
// containing one. A malformed embedded string fails the whole decode. Raw
// keeps the effective JSON so partial objects can be merged over an existing
// value instead of replacing it.
type Encoded[T any] struct {
	Value   T
	Raw     json.RawMessage
	Present bool
}

func (e *Encoded[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(s), &e.Value); err != nil {
			return fmt.Errorf("embedded JSON: %w", err)
		}
		e.Raw = json.RawMessage(s)
		e.Present = true
		return nil
	}
	if err := json.Unmarshal(b, &e.Value); err != nil {
		return err
	}
	e.Raw = append(json.RawMessage(nil), b...)
	e.Present = true
	return nil
}

// MergeInto decodes the raw payload over dst, so keys the caller omitted keep
// their current values.
func (e Encoded[T]) MergeInto(dst *T) error {
	if !e.Present {
		return nil
	}
	return json.Unmarshal(e.Raw, dst)
}

func (e Encoded[T]) MarshalJSON() ([]byte, error) {
	if !e.Present {
		return []byte("null"), nil
	}
	return json.Marshal(e.Value)
}

// OptBool accepts true/false or "true"/"false". Empty string means absent.
type OptBool struct {
	Value   bool
	Present bool
}

func (o *OptBool) UnmarshalJSON(b []byte) error {
	s, done, err := scalarToken(b)
	if err != nil || done {
		return err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	o.Value, o.Present = v, true
	return nil
}

// OptInt accepts a JSON number or a numeric string.
type OptInt struct {
	Value   int
	Present bool
}

func (o *OptInt) UnmarshalJSON(b []byte) error {
	s, done, err := scalarToken(b)
	if err != nil || done {
		return err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	o.Value, o.Present = v, true
	return nil
}

// OptFloat accepts a JSON number or a numeric string.
type OptFloat struct {
	Value   float64
	Present bool
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	s, done, err := scalarToken(b)
	if err != nil || done {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	o.Value, o.Present = v, true
	return nil
}

// scalarToken normalizes a JSON scalar to its text form. done reports that
// the value was null/empty and the field should stay absent.
func scalarToken(b []byte) (s string, done bool, err error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return "", true, nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return "", false, err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return "", true, nil
		}
		return str, false, nil
	}
	return string(b), false, nil
}

// FormToJSON converts a flat form (multipart or urlencoded values) into a JSON
// object so form payloads run through the exact same decoding path as JSON
// bodies. Only the first value per key is kept.
func FormToJSON(values map[string][]string) ([]byte, error) {
	obj := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			obj[k] = vs[0]
		}
	}
	return json.Marshal(obj)
}
