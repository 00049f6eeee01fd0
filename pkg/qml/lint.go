package qml

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Warning is a lint diagnostic tied to a renderer rule. Lint never modifies
// the document; the host file's content is authoritative even when wrong.
type Warning struct {
	RuleKey string `json:"rule_key"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Lint inspects the rule-based renderer for classification rules whose
// filters are trivially unsatisfiable and for pairs of rules whose numeric
// ranges overlap. Only filters of the form
//
//	"field" op number [AND "field" op number ...]
//
// are analyzed; anything else is skipped silently. Returned warnings are
// advisory — the document itself is left untouched.
func (d *Document) Lint() []Warning {
	if d.Renderer == nil || !d.Renderer.RuleBased() || d.Renderer.Rules == nil {
		return nil
	}

	var warnings []Warning
	intervals := make([]*interval, len(d.Renderer.Rules.Rules))

	for i, rule := range d.Renderer.Rules.Rules {
		iv := parseFilterInterval(rule.Filter)
		intervals[i] = iv
		if iv == nil {
			continue
		}

		if iv.empty() {
			warnings = append(warnings, Warning{
				RuleKey: rule.Key,
				Label:   rule.Label,
				Message: fmt.Sprintf("filter %q can never match", rule.Filter),
			})
		}
	}

	rules := d.Renderer.Rules.Rules
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			a, b := intervals[i], intervals[j]
			if a == nil || b == nil || a.field != b.field {
				continue
			}
			if a.empty() || b.empty() {
				continue
			}
			if at, ok := a.intersect(b); ok {
				warnings = append(warnings, Warning{
					RuleKey: rules[i].Key,
					Label:   rules[i].Label,
					Message: fmt.Sprintf(
						"range overlaps rule %q (both match %q %s)",
						rules[j].Label, a.field, at,
					),
				})
			}
		}
	}

	return warnings
}

// interval is the value set admitted by a conjunction of comparisons over a
// single numeric field.
type interval struct {
	field string
	lo    float64
	loInc bool
	hi    float64
	hiInc bool
}

var clausePattern = regexp.MustCompile(`^\s*"([^"]+)"\s*(<=|>=|<|>|=)\s*(-?\d+(?:\.\d+)?)\s*$`)

// parseFilterInterval reduces a conjunctive comparison filter to an
// interval. Returns nil for empty filters, disjunctions, multi-field
// conjunctions, or any clause outside the comparison grammar.
func parseFilterInterval(filter string) *interval {
	if strings.TrimSpace(filter) == "" {
		return nil
	}
	if strings.Contains(filter, " OR ") || strings.Contains(filter, " or ") {
		return nil
	}

	iv := &interval{
		lo: math.Inf(-1),
		hi: math.Inf(1),
	}

	for _, clause := range strings.Split(filter, " AND ") {
		m := clausePattern.FindStringSubmatch(clause)
		if m == nil {
			return nil
		}

		field := m[1]
		if iv.field == "" {
			iv.field = field
		} else if iv.field != field {
			return nil
		}

		value, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil
		}

		switch m[2] {
		case "<":
			iv.tightenHi(value, false)
		case "<=":
			iv.tightenHi(value, true)
		case ">":
			iv.tightenLo(value, false)
		case ">=":
			iv.tightenLo(value, true)
		case "=":
			iv.tightenLo(value, true)
			iv.tightenHi(value, true)
		}
	}

	return iv
}

func (iv *interval) tightenLo(value float64, inclusive bool) {
	if value > iv.lo || (value == iv.lo && iv.loInc && !inclusive) {
		iv.lo = value
		iv.loInc = inclusive
	}
}

func (iv *interval) tightenHi(value float64, inclusive bool) {
	if value < iv.hi || (value == iv.hi && iv.hiInc && !inclusive) {
		iv.hi = value
		iv.hiInc = inclusive
	}
}

func (iv *interval) empty() bool {
	if iv.lo > iv.hi {
		return true
	}
	if iv.lo == iv.hi {
		return !(iv.loInc && iv.hiInc)
	}
	return false
}

// intersect reports whether two intervals share any value, and describes the
// shared region.
func (iv *interval) intersect(other *interval) (string, bool) {
	lo, loInc := iv.lo, iv.loInc
	if other.lo > lo || (other.lo == lo && !other.loInc) {
		lo, loInc = other.lo, other.loInc
	}

	hi, hiInc := iv.hi, iv.hiInc
	if other.hi < hi || (other.hi == hi && !other.hiInc) {
		hi, hiInc = other.hi, other.hiInc
	}

	if lo > hi {
		return "", false
	}
	if lo == hi {
		if loInc && hiInc {
			return fmt.Sprintf("= %g", lo), true
		}
		return "", false
	}

	return fmt.Sprintf("in (%g, %g)", lo, hi), true
}
