package xsd

import "fmt"

// Info summarizes a loaded schema.
type Info struct {
	TargetNamespace      string   `json:"target_namespace" yaml:"target_namespace"`
	ElementFormDefault   string   `json:"element_form_default" yaml:"element_form_default"`
	AttributeFormDefault string   `json:"attribute_form_default" yaml:"attribute_form_default"`
	ComplexTypes         []string `json:"complex_types" yaml:"complex_types"`
	SimpleTypes          []string `json:"simple_types" yaml:"simple_types"`
	Elements             []string `json:"elements" yaml:"elements"`
	ChoiceGroups         int      `json:"choice_groups" yaml:"choice_groups"`
	Imports              []string `json:"imports" yaml:"imports"`
	Includes             []string `json:"includes" yaml:"includes"`
}

// Analyze collects type and element names and counts choice groups
// across every named complex type.
func Analyze(s *Schema) Info {
	info := Info{
		TargetNamespace:      s.TargetNamespace,
		ElementFormDefault:   s.ElementFormDefault,
		AttributeFormDefault: s.AttributeFormDefault,
		Imports:              s.Imports,
		Includes:             s.Includes,
	}
	for _, t := range s.Types {
		if t.IsComplex() {
			info.ComplexTypes = append(info.ComplexTypes, t.Name.Local)
			info.ChoiceGroups += CountChoices(t.Content)
			continue
		}
		info.SimpleTypes = append(info.SimpleTypes, t.Name.Local)
	}
	for _, e := range s.Elements {
		info.Elements = append(info.Elements, e.Name.Local)
	}
	return info
}

// CountChoices returns the number of choice groups in a content model.
func CountChoices(p *Particle) int {
	if p == nil {
		return 0
	}
	n := 0
	if p.Kind == ParticleChoice {
		n++
	}
	for _, c := range p.Children {
		n += CountChoices(c)
	}
	return n
}

// Check reports constructs that convert with reduced fidelity.
func Check(s *Schema) []string {
	var warnings []string
	if len(s.SubstitutionGroups()) > 0 {
		warnings = append(warnings, "Substitution groups found - may not convert perfectly")
	}
	for _, t := range s.Types {
		if t.IsComplex() && t.Derivation == DerivationExtension {
			warnings = append(warnings, fmt.Sprintf("Complex type extension found in %s", t.Name.Local))
		}
	}
	return warnings
}

// Report is the outcome of checking a schema file for conversion.
type Report struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CheckFile loads filename and reports whether it can be converted. Load
// failures are reported as errors rather than returned.
func CheckFile(filename string) Report {
	s, err := ParseFile(filename)
	if err != nil {
		return Report{Errors: []string{err.Error()}}
	}
	return Report{Valid: true, Warnings: Check(s)}
}
