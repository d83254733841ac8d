package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	titleCaser    = cases.Title(language.Und)
)

// CleanName strips a Clark-notation namespace from a qualified name:
// "{http://example.com/ns}Order" becomes "Order". Names without a
// namespace are returned unchanged.
func CleanName(name string) string {
	if !strings.HasPrefix(name, "{") {
		return name
	}
	if i := strings.Index(name, "}"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// QualifiedName renders a namespace and local name in Clark notation.
func QualifiedName(space, local string) string {
	if space == "" {
		return local
	}
	return "{" + space + "}" + local
}

// CollapseWhitespace trims s and replaces every whitespace run with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// TitleFromNamespace derives a human readable title from a target namespace.
// URL-like namespaces use their last path segment with dashes turned into
// spaces; URNs have their colons turned into spaces. The result is title-cased.
//
//	http://example.com/order-service -> "Order Service"
//	urn:acme:orders                  -> "Urn Acme Orders"
func TitleFromNamespace(ns string) string {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return ""
	}
	var base string
	if strings.Contains(ns, "/") {
		trimmed := strings.TrimRight(ns, "/")
		base = trimmed[strings.LastIndex(trimmed, "/")+1:]
		base = strings.ReplaceAll(base, "-", " ")
	} else {
		base = strings.ReplaceAll(ns, ":", " ")
	}
	return titleCaser.String(CollapseWhitespace(base))
}
