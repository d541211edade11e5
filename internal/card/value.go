package card

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type valueKind int

const (
	valueNone valueKind = iota
	valueNumber
	valueText
)

// Value is a card attribute that is either absent, a plain integer, or a
// condition-dependent string spelled out in the card's body text (for
// example a cost of "X").
type Value struct {
	kind valueKind
	n    int
	s    string
}

// NoValue reports an absent attribute.
var NoValue = Value{}

// Number returns an integer-valued attribute.
func Number(n int) Value {
	return Value{kind: valueNumber, n: n}
}

// Text returns a condition-dependent attribute.
func Text(s string) Value {
	return Value{kind: valueText, s: s}
}

// IsNone reports whether the attribute is absent from the card.
func (v Value) IsNone() bool {
	return v.kind == valueNone
}

// IsText reports whether the attribute depends on a condition described in
// the card body rather than holding a plain integer.
func (v Value) IsText() bool {
	return v.kind == valueText
}

// Int returns the integer form of the attribute. The second return is false
// when the attribute is absent or condition-dependent.
func (v Value) Int() (int, bool) {
	if v.kind != valueNumber {
		return 0, false
	}
	return v.n, true
}

func (v Value) String() string {
	switch v.kind {
	case valueNumber:
		return strconv.Itoa(v.n)
	case valueText:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON encodes absent values as null, keeping the feed shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case valueNumber:
		return json.Marshal(v.n)
	case valueText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = NoValue
	case float64:
		if t != math.Trunc(t) {
			return fmt.Errorf("non-integral value literal %v", t)
		}
		*v = Number(int(t))
	case string:
		// Feeds occasionally carry digits as strings.
		if n, err := strconv.Atoi(t); err == nil {
			*v = Number(n)
		} else {
			*v = Text(t)
		}
	default:
		return fmt.Errorf("unsupported value literal %v", raw)
	}
	return nil
}
