package xsd

import (
	"html"
	"strings"
	"sync"

	"aqwari.net/xml/xmltree"
	"github.com/microcosm-cc/bluemonday"

	"github.com/blimu-dev/xsd2oas/pkg/utils"
)

var (
	docPolicyOnce sync.Once
	docPolicy     *bluemonday.Policy
)

func textPolicy() *bluemonday.Policy {
	docPolicyOnce.Do(func() {
		docPolicy = bluemonday.StrictPolicy()
		docPolicy.AddSpaceWhenStrippingTag(true)
	})
	return docPolicy
}

// ExtractDocumentation turns the raw content of an xs:documentation
// element into plain text: markup is stripped, entities are decoded and
// whitespace runs collapse to single spaces.
func ExtractDocumentation(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "<![CDATA[", "")
	text = strings.ReplaceAll(text, "]]>", "")
	text = html.UnescapeString(textPolicy().Sanitize(text))
	return utils.CollapseWhitespace(text)
}

// annotation returns the first non-empty documentation of el's
// xs:annotation child.
func annotation(el *xmltree.Element) string {
	for _, a := range children(el) {
		if a.Name.Local != "annotation" {
			continue
		}
		for _, d := range children(a) {
			if d.Name.Local != "documentation" {
				continue
			}
			if text := ExtractDocumentation(d.Content); text != "" {
				return text
			}
		}
	}
	return ""
}
