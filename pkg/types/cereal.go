package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Record construction errors.
var (
	ErrMissingField = errors.New("missing required field")
	ErrBadNumber    = errors.New("value is not numeric")
)

// Cereal represents one cereal product. ID is zero until the store assigns
// one; afterwards it is immutable. The struct tag order is the canonical
// serialized field order.
type Cereal struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Mfr      string  `json:"mfr"`
	Type     string  `json:"type"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Fat      int     `json:"fat"`
	Sodium   int     `json:"sodium"`
	Fiber    float64 `json:"fiber"`
	Carbo    float64 `json:"carbo"`
	Sugars   int     `json:"sugars"`
	Potass   int     `json:"potass"`
	Vitamins int     `json:"vitamins"`
	Shelf    int     `json:"shelf"`
	Weight   float64 `json:"weight"`
	Cups     float64 `json:"cups"`
	Rating   float64 `json:"rating"`
}

// CerealFromMap builds a Cereal from an untyped mapping (an HTTP body or a
// CSV row). The name, mfr, and type fields are mandatory; every numeric
// field defaults to zero when absent and fails with ErrBadNumber when
// present but not coercible. Unknown keys are ignored.
func CerealFromMap(m map[string]any) (*Cereal, error) {
	c := &Cereal{}

	var err error
	if c.Name, err = requiredString(m, "name"); err != nil {
		return nil, err
	}
	if c.Mfr, err = requiredString(m, "mfr"); err != nil {
		return nil, err
	}
	if c.Type, err = requiredString(m, "type"); err != nil {
		return nil, err
	}

	intFields := []struct {
		key string
		dst *int
	}{
		{"calories", &c.Calories},
		{"protein", &c.Protein},
		{"fat", &c.Fat},
		{"sodium", &c.Sodium},
		{"sugars", &c.Sugars},
		{"potass", &c.Potass},
		{"vitamins", &c.Vitamins},
		{"shelf", &c.Shelf},
	}
	for _, f := range intFields {
		if *f.dst, err = intValue(m, f.key); err != nil {
			return nil, err
		}
	}

	floatFields := []struct {
		key string
		dst *float64
	}{
		{"fiber", &c.Fiber},
		{"carbo", &c.Carbo},
		{"weight", &c.Weight},
		{"cups", &c.Cups},
		{"rating", &c.Rating},
	}
	for _, f := range floatFields {
		if *f.dst, err = floatValue(m, f.key); err != nil {
			return nil, err
		}
	}

	id, err := intValue(m, "id")
	if err != nil {
		return nil, err
	}
	c.ID = int64(id)

	return c, nil
}

// ToMap returns a flat key-value view of the record. The id key is included
// only when includeID is set; insert payloads omit it, read responses
// carry it.
func (c *Cereal) ToMap(includeID bool) map[string]any {
	m := map[string]any{
		"name":     c.Name,
		"mfr":      c.Mfr,
		"type":     c.Type,
		"calories": c.Calories,
		"protein":  c.Protein,
		"fat":      c.Fat,
		"sodium":   c.Sodium,
		"fiber":    c.Fiber,
		"carbo":    c.Carbo,
		"sugars":   c.Sugars,
		"potass":   c.Potass,
		"vitamins": c.Vitamins,
		"shelf":    c.Shelf,
		"weight":   c.Weight,
		"cups":     c.Cups,
		"rating":   c.Rating,
	}
	if includeID {
		m["id"] = c.ID
	}
	return m
}

// requiredString returns the string value for key.
// Returns ErrMissingField when the key is absent or empty.
func requiredString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return s, nil
}

// intValue coerces the value for key to an int, defaulting to 0 when the
// key is absent or holds an empty string.
func intValue(m map[string]any, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, n.String())
		}
		return int(f), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		// CSV cells carry integers as plain or decimal text.
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, s)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadNumber, key)
	}
}

// floatValue coerces the value for key to a float64, defaulting to 0 when
// the key is absent or holds an empty string.
func floatValue(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, n.String())
		}
		return f, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, s)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadNumber, key)
	}
}
