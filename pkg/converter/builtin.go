package converter

import (
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/utils"
)

func str(format string) *openapi.Schema {
	return &openapi.Schema{Kind: openapi.KindString, Format: format}
}

func num(format string) *openapi.Schema {
	return &openapi.Schema{Kind: openapi.KindNumber, Format: format}
}

func integer(format string, minimum, maximum *openapi.Number) *openapi.Schema {
	return &openapi.Schema{Kind: openapi.KindInteger, Format: format, Minimum: minimum, Maximum: maximum}
}

var builtinTable = map[string]*openapi.Schema{
	// String family
	"string":           str(""),
	"normalizedString": str(""),
	"token":            str(""),
	"language":         str(""),
	"Name":             str(""),
	"NCName":           str(""),
	"ID":               str(""),
	"IDREF":            str(""),
	"IDREFS":           str(""),
	"ENTITY":           str(""),
	"ENTITIES":         str(""),
	"NMTOKEN":          str(""),
	"NMTOKENS":         str(""),

	// Numeric family
	"decimal":            num(""),
	"float":              num("float"),
	"double":             num("double"),
	"integer":            integer("", nil, nil),
	"nonPositiveInteger": integer("", nil, openapi.MustNumber("0")),
	"negativeInteger":    integer("", nil, openapi.MustNumber("-1")),
	"long":               integer("int64", nil, nil),
	"int":                integer("int32", nil, nil),
	"short":              integer("", nil, nil),
	"byte":               integer("", nil, nil),
	"nonNegativeInteger": integer("", openapi.MustNumber("0"), nil),
	"unsignedLong":       integer("", openapi.MustNumber("0"), nil),
	"unsignedInt":        integer("", openapi.MustNumber("0"), nil),
	"unsignedShort":      integer("", openapi.MustNumber("0"), nil),
	"unsignedByte":       integer("", openapi.MustNumber("0"), nil),
	"positiveInteger":    integer("", openapi.MustNumber("1"), nil),

	// Date and time family
	"dateTime":   str("date-time"),
	"date":       str("date"),
	"time":       str("time"),
	"duration":   str(""),
	"gYearMonth": str(""),
	"gYear":      str(""),
	"gMonthDay":  str(""),
	"gDay":       str(""),
	"gMonth":     str(""),

	"boolean":      {Kind: openapi.KindBoolean},
	"base64Binary": str("byte"),
	"hexBinary":    str("binary"),
	"anyURI":       str("uri"),
	"QName":        str(""),
	"NOTATION":     str(""),
}

// MapBuiltin returns the schema for an XML Schema built-in type. The name
// may carry a Clark-notation namespace. Unknown names map to a plain
// string schema. The result is a fresh copy the caller may modify.
func MapBuiltin(name string) *openapi.Schema {
	if s, ok := builtinTable[utils.CleanName(name)]; ok {
		return s.Clone()
	}
	return str("")
}
