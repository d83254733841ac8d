package xsd

import "encoding/xml"

var builtinNames = map[string]bool{
	"anyType": true, "anySimpleType": true,
	"string": true, "normalizedString": true, "token": true, "language": true,
	"Name": true, "NCName": true, "ID": true, "IDREF": true, "IDREFS": true,
	"ENTITY": true, "ENTITIES": true, "NMTOKEN": true, "NMTOKENS": true,
	"decimal": true, "float": true, "double": true, "integer": true,
	"nonPositiveInteger": true, "negativeInteger": true, "long": true, "int": true,
	"short": true, "byte": true, "nonNegativeInteger": true, "unsignedLong": true,
	"unsignedInt": true, "unsignedShort": true, "unsignedByte": true, "positiveInteger": true,
	"dateTime": true, "dateTimeStamp": true, "date": true, "time": true, "duration": true,
	"dayTimeDuration": true, "yearMonthDuration": true,
	"gYearMonth": true, "gYear": true, "gMonthDay": true, "gDay": true, "gMonth": true,
	"boolean": true, "base64Binary": true, "hexBinary": true, "anyURI": true,
	"QName": true, "NOTATION": true,
}

// IsBuiltin reports whether local names a built-in XML Schema datatype.
func IsBuiltin(local string) bool {
	return builtinNames[local]
}

func (p *parser) builtin(local string) *Type {
	if t, ok := p.builtins[local]; ok {
		return t
	}
	kind := SimpleKind
	if local == "anyType" {
		kind = ComplexKind
	}
	t := &Type{Name: xml.Name{Space: Namespace, Local: local}, Kind: kind, Builtin: true}
	p.builtins[local] = t
	return t
}
