package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Number accepts a JSON number or a numeric string. null and "" leave it unset.
type Number struct {
	Value float64
	Set   bool
}

func N(v float64) Number { return Number{Value: v, Set: true} }

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = Number{}
		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		if strings.TrimSpace(s) == "" {
			*n = Number{}
			return nil
		}
		v = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", b, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %s", b)
	}
	*n = Number{Value: f, Set: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n Number) Or(def float64) float64 {
	if !n.Set {
		return def
	}
	return n.Value
}

// Int truncates toward zero. Use Count where a fraction must be rejected.
func (n Number) Int() int {
	return int(n.Value)
}

// Count returns the value as a unit count, or false when it is not a
// positive whole number.
func (n Number) Count() (int, bool) {
	if !n.Positive() || n.Value != math.Trunc(n.Value) || n.Value > math.MaxInt32 {
		return 0, false
	}
	return int(n.Value), true
}

// Positive reports whether the value is set and greater than zero.
func (n Number) Positive() bool {
	return n.Set && n.Value > 0
}

// ID returns the value as a row id, or false when it is not a positive integer.
func (n Number) ID() (uint, bool) {
	if !n.Positive() || n.Value != math.Trunc(n.Value) || n.Value > math.MaxUint32 {
		return 0, false
	}
	return uint(n.Value), true
}
