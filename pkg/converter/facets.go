package converter

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/utils"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// ApplyFacets translates restriction facets into schema constraints.
// Later facets overwrite earlier ones; facets without an OpenAPI
// counterpart (whiteSpace, explicitTimezone, ...) are ignored, and so are
// bounds whose literal is not a number.
func ApplyFacets(s *openapi.Schema, facets []xsd.Facet) {
	var (
		totalDigits    *int
		fractionDigits *int
	)
	for _, f := range facets {
		switch utils.CleanName(f.Name) {
		case "length":
			if n, err := count(f.Value); err == nil {
				s.MinLength, s.MaxLength = openapi.Ptr(n), openapi.Ptr(n)
			}
		case "minLength":
			if n, err := count(f.Value); err == nil {
				s.MinLength = openapi.Ptr(n)
			}
		case "maxLength":
			if n, err := count(f.Value); err == nil {
				s.MaxLength = openapi.Ptr(n)
			}
		case "pattern":
			s.Pattern = f.Value
		case "minInclusive":
			if v, ok := bound(f.Value); ok {
				s.Minimum = v
			}
		case "maxInclusive":
			if v, ok := bound(f.Value); ok {
				s.Maximum = v
			}
		case "minExclusive":
			if v, ok := bound(f.Value); ok {
				s.Minimum = v
				s.ExclusiveMinimum = true
			}
		case "maxExclusive":
			if v, ok := bound(f.Value); ok {
				s.Maximum = v
				s.ExclusiveMaximum = true
			}
		case "totalDigits":
			if n, err := count(f.Value); err == nil {
				totalDigits = openapi.Ptr(n)
			}
		case "fractionDigits":
			if n, err := count(f.Value); err == nil {
				fractionDigits = openapi.Ptr(n)
			}
		}
	}
	if totalDigits != nil {
		applyDigitBounds(s, *totalDigits, fractionDigits)
	}
}

func bound(literal string) (*openapi.Number, bool) {
	n, err := openapi.ParseNumber(literal)
	if err != nil {
		return nil, false
	}
	return n, true
}

// count parses a non-negative facet count in base 10.
func count(literal string) (int, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("invalid count %q", literal)
	}
	return int(d.IntPart()), nil
}

// applyDigitBounds derives symmetric bounds from totalDigits and
// fractionDigits. fractionDigits of zero makes the schema an integer.
func applyDigitBounds(s *openapi.Schema, total int, fraction *int) {
	one := decimal.NewFromInt(1)
	if fraction != nil && *fraction == 0 {
		s.Kind = openapi.KindInteger
		setSymmetric(s, decimal.New(1, int32(total)).Sub(one))
		return
	}

	s.Kind = openapi.KindNumber
	if fraction == nil {
		setSymmetric(s, decimal.New(1, int32(total)).Sub(one))
		return
	}
	intDigits := total - *fraction
	if intDigits < 0 {
		intDigits = 0
	}
	unit := decimal.New(1, -int32(*fraction))
	magnitude := decimal.New(1, int32(intDigits)).Sub(one).Add(one.Sub(unit))
	setSymmetric(s, magnitude)
	s.MultipleOf = openapi.NewNumber(unit)
}

func setSymmetric(s *openapi.Schema, magnitude decimal.Decimal) {
	s.Minimum = openapi.NewNumber(magnitude.Neg())
	s.Maximum = openapi.NewNumber(magnitude)
}

// coerce converts a schema literal (enumeration value, default) to the
// Go value matching kind. Literals that do not parse stay strings, and
// so do INF, -INF and NaN, which have no JSON number form.
func coerce(literal string, kind openapi.Kind) any {
	switch kind {
	case openapi.KindInteger:
		if d, err := decimal.NewFromString(literal); err == nil && d.IsInteger() {
			return d.IntPart()
		}
	case openapi.KindNumber:
		if v, err := cast.ToFloat64E(literal); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v
		}
	case openapi.KindBoolean:
		if v, err := cast.ToBoolE(literal); err == nil {
			return v
		}
	}
	return literal
}

func coerceAll(literals []string, kind openapi.Kind) []any {
	if len(literals) == 0 {
		return nil
	}
	out := make([]any, len(literals))
	for i, l := range literals {
		out[i] = coerce(l, kind)
	}
	return out
}
