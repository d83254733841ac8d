package converter

import (
	"github.com/shopspring/decimal"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/utils"
)

var (
	moneyBound = decimal.RequireFromString("99999999.99")
	cent       = decimal.RequireFromString("0.01")
)

// domainTable holds business types whose constraints are stricter than
// what their XSD restriction facets express.
var domainTable = map[string]*openapi.Schema{
	"Money": {
		Kind:       openapi.KindNumber,
		Format:     "decimal",
		Minimum:    openapi.NewNumber(moneyBound.Neg()),
		Maximum:    openapi.NewNumber(moneyBound),
		MultipleOf: openapi.NewNumber(cent),
	},
	"PositiveMoney": {
		Kind:       openapi.KindNumber,
		Format:     "decimal",
		Minimum:    openapi.MustNumber("0"),
		Maximum:    openapi.NewNumber(moneyBound),
		MultipleOf: openapi.NewNumber(cent),
	},
	"Percent": {
		Kind:    openapi.KindNumber,
		Minimum: openapi.MustNumber("0"),
		Maximum: openapi.MustNumber("100"),
	},
	"NonEmptyPercent": {
		Kind:    openapi.KindNumber,
		Minimum: openapi.NewNumber(cent),
		Maximum: openapi.MustNumber("100"),
	},
	"Guid":           {Kind: openapi.KindString, Format: "uuid"},
	"ConversationId": {Kind: openapi.KindString, Format: "uuid"},
	"Date":           {Kind: openapi.KindString, Format: "date"},
	"DemandId":       {Kind: openapi.KindString, Pattern: `^\d+$`},
	"AFCaseId":       {Kind: openapi.KindString, Pattern: `^\d+$`},
	"CompanyCaseId":  {Kind: openapi.KindString, Pattern: `^\d+$`},
	"DocketNo":       {Kind: openapi.KindString, Pattern: `^\d{2}-\d{6}$`},
	"Cocode": {
		Kind:      openapi.KindString,
		Pattern:   `^\d{5}$`,
		MinLength: openapi.Ptr(5),
		MaxLength: openapi.Ptr(5),
	},
}

// MapDomain returns the schema of a known domain type, looked up by its
// local name. The result is a fresh copy.
func MapDomain(name string) (*openapi.Schema, bool) {
	s, ok := domainTable[utils.CleanName(name)]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}
