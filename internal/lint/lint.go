// Package lint reports problems in a manifest that do not prevent it from
// being read but are likely mistakes: unusable registry names, blank titles,
// unrecognised colors and shadowed duplicates.
package lint

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding describes one problem with one component field. Index is the
// position of the component in the collection, which differs from the
// position of its entry in the document when an entry declares several
// components.
type Finding struct {
	Severity  Severity `json:"severity"`
	Index     int      `json:"index"`
	Component string   `json:"component"`
	Field     string   `json:"field"`
	Message   string   `json:"message"`
}

// Location names the offending field as "component <index> (<name>).<field>".
func (f Finding) Location() string {
	return fmt.Sprintf("component %d (%s).%s", f.Index, f.Component, f.Field)
}

// Check lints every component of c in order.
func Check(c *manifest.Collection) []Finding {
	var findings []Finding
	v := validatorInstance()
	seen := make(map[string]int, c.Count())

	for i, comp := range c.Components() {
		rules := componentRules{
			Name:            comp.Name(),
			DisplayName:     comp.DisplayName(),
			BackgroundColor: comp.BackgroundColor(),
		}

		if err := v.Struct(rules); err != nil {
			findings = append(findings, convertValidationError(i, comp, err)...)
		}

		if first, dup := seen[comp.Name()]; dup {
			findings = append(findings, Finding{
				Severity:  SeverityWarning,
				Index:     i,
				Component: comp.Name(),
				Field:     "name",
				Message:   fmt.Sprintf("duplicate of component %d; lookups by name return the first", first),
			})
			continue
		}
		seen[comp.Name()] = i
	}

	return findings
}

// HasErrors reports whether any finding has error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err returns a ValidationError for the first error-severity finding, or nil.
func Err(findings []Finding) error {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return rnerrors.NewValidationError(f.Location(), f.Message, nil)
		}
	}
	return nil
}

func convertValidationError(index int, comp *manifest.Component, err error) []Finding {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []Finding{{
			Severity:  SeverityError,
			Index:     index,
			Component: comp.Name(),
			Message:   err.Error(),
		}}
	}

	findings := make([]Finding, 0, len(ves))
	for _, fe := range ves {
		f := Finding{Index: index, Component: comp.Name(), Field: fe.Field()}
		switch fe.Tag() {
		case "registry_name":
			f.Severity = SeverityError
			f.Message = fmt.Sprintf("%q is not a valid registry name", comp.Name())
		case "required":
			f.Severity = SeverityWarning
			f.Message = "display name is empty"
		case "rn_color":
			f.Severity = SeverityWarning
			f.Message = fmt.Sprintf("%q is not a recognised color literal", comp.BackgroundColor())
		default:
			f.Severity = SeverityWarning
			f.Message = fmt.Sprintf("%s failed validation for tag '%s'", fe.Field(), fe.Tag())
		}
		findings = append(findings, f)
	}
	return findings
}
