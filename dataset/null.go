package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NullFloat is a float64 that may be missing.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a valid NullFloat.
func Float(v float64) NullFloat { return NullFloat{Float64: v, Valid: true} }

// ParseFloat coerces text to a NullFloat. Empty, malformed and non-finite
// input yields a missing value.
func ParseFloat(s string) NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat{}
	}
	return Float(v)
}

// String renders the value for tabular output; missing renders as "".
func (n NullFloat) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

func (n *NullFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

// NullInt is an int that may be missing.
type NullInt struct {
	Int   int
	Valid bool
}

// Int returns a valid NullInt.
func Int(v int) NullInt { return NullInt{Int: v, Valid: true} }

// ParseCode coerces text holding a non-negative whole number, such as an
// arrondissement code. "12" and "12.0" are both accepted; empty text,
// negative or fractional numbers and garbage yield a missing value.
func ParseCode(s string) NullInt {
	f := ParseFloat(s)
	if !f.Valid || f.Float64 < 0 || f.Float64 != math.Trunc(f.Float64) || f.Float64 > math.MaxInt32 {
		return NullInt{}
	}
	return Int(int(f.Float64))
}

func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Int)
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int)
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullInt{}
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Int(v)
	return nil
}
