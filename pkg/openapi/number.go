package openapi

import (
	"github.com/shopspring/decimal"
)

// Number is an exact decimal used by numeric constraints (minimum,
// maximum, multipleOf). It renders with every significant digit.
type Number struct {
	d decimal.Decimal
}

// NewNumber wraps d.
func NewNumber(d decimal.Decimal) *Number {
	return &Number{d: d}
}

// ParseNumber parses a decimal literal such as "-999.99" or "1E3".
func ParseNumber(s string) (*Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Number{d: d}, nil
}

// MustNumber is like ParseNumber but panics on malformed input. It is
// meant for static tables.
func MustNumber(s string) *Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Decimal returns the underlying value.
func (n Number) Decimal() decimal.Decimal { return n.d }

// Equal reports whether n and o are numerically equal.
func (n Number) Equal(o Number) bool { return n.d.Equal(o.d) }

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool { return n.d.IsInteger() }

func (n Number) String() string { return n.d.String() }

// DeepCopy implements deepcopy.Interface; the decimal's unexported state
// would otherwise be dropped by Schema.Clone.
func (n *Number) DeepCopy() interface{} {
	if n == nil {
		return (*Number)(nil)
	}
	c := *n
	return &c
}
