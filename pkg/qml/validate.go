package qml

import (
	"errors"
	"fmt"
)

// Validate performs structural checks on the document. It verifies that
// every rule's symbol reference resolves, rule keys are unique, configured
// edit widgets name a widget kind, and the temporal start field exists in
// the field configuration. Content is never rewritten; overlapping or
// unsatisfiable rule filters are Lint's concern, not Validate's.
func (d *Document) Validate() error {
	var problems []error

	if d.Renderer != nil && d.Renderer.RuleBased() {
		problems = append(problems, d.validateRules()...)
	}

	if d.Fields != nil {
		for i := range d.Fields.Fields {
			f := &d.Fields.Fields[i]
			if f.Name == "" {
				problems = append(problems, fmt.Errorf("%w: field %d has no name", ErrInvalid, i))
			}
			if f.EditWidget != nil && f.EditWidget.Type == "" {
				problems = append(problems, fmt.Errorf("%w: field %q edit widget has no type", ErrInvalid, f.Name))
			}
		}
	}

	if d.Temporal.IsEnabled() && d.Temporal.StartField != "" && d.Fields != nil {
		if !d.Fields.HasField(d.Temporal.StartField) {
			problems = append(problems, fmt.Errorf(
				"%w: temporal start field %q is not a configured field",
				ErrInvalid, d.Temporal.StartField,
			))
		}
	}

	return errors.Join(problems...)
}

func (d *Document) validateRules() []error {
	var problems []error

	if d.Renderer.Rules == nil {
		return problems
	}

	seen := make(map[string]bool)
	for _, rule := range d.Renderer.Rules.Rules {
		if rule.Key == "" {
			problems = append(problems, fmt.Errorf("%w: rule with label %q has no key", ErrInvalid, rule.Label))
		} else if seen[rule.Key] {
			problems = append(problems, fmt.Errorf("%w: duplicate rule key %s", ErrInvalid, rule.Key))
		}
		seen[rule.Key] = true

		if rule.Symbol == "" {
			continue
		}
		if d.Renderer.Symbols.Symbol(rule.Symbol) == nil {
			problems = append(problems, fmt.Errorf(
				"%w: rule %s references undefined symbol %q",
				ErrInvalid, rule.Key, rule.Symbol,
			))
		}
	}

	return problems
}
