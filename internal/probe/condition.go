package probe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mj1618/selwatch/internal/platform"
)

// PropertyPredicate requires a boolean element property to have Value.
type PropertyPredicate struct {
	Property platform.PropertyID
	Value    bool
}

// String returns the predicate in "name=value" form.
func (p PropertyPredicate) String() string {
	return p.Property.String() + "=" + strconv.FormatBool(p.Value)
}

// ParsePredicate parses "name=true|false". A bare name means "name=true".
func ParsePredicate(s string) (PropertyPredicate, error) {
	name, val, hasVal := strings.Cut(s, "=")
	prop, err := platform.ParsePropertyID(name)
	if err != nil {
		return PropertyPredicate{}, err
	}
	value := true
	if hasVal {
		value, err = strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return PropertyPredicate{}, fmt.Errorf("invalid value in predicate %q: expected true or false", s)
		}
	}
	return PropertyPredicate{Property: prop, Value: value}, nil
}

// ParsePredicates parses each entry with ParsePredicate.
func ParsePredicates(specs []string) ([]PropertyPredicate, error) {
	preds := make([]PropertyPredicate, 0, len(specs))
	for _, s := range specs {
		if strings.TrimSpace(s) == "" {
			continue
		}
		p, err := ParsePredicate(s)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// Presets are the named predicate sets selectable with --preset.
var Presets = map[string][]PropertyPredicate{
	"text": {
		{Property: platform.PropTextPattern2Available, Value: true},
	},
	"editable-text": {
		{Property: platform.PropTextPattern2Available, Value: true},
		{Property: platform.PropValueIsReadOnly, Value: false},
	},
	"editable-value": {
		{Property: platform.PropValuePatternAvailable, Value: true},
		{Property: platform.PropTextPattern2Available, Value: true},
		{Property: platform.PropValueIsReadOnly, Value: false},
	},
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "text"

// LookupPreset returns the predicates of a named preset.
func LookupPreset(name string) ([]PropertyPredicate, error) {
	preds, ok := Presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %q (use one of: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return preds, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildCondition conjoins preds into one provider condition, starting from the
// always-true condition. An empty preds yields the always-true condition.
func BuildCondition(auto platform.Automation, preds []PropertyPredicate) (platform.Condition, error) {
	acc, err := auto.TrueCondition()
	if err != nil {
		return nil, fmt.Errorf("create true condition: %w", err)
	}
	for _, p := range preds {
		leaf, err := auto.PropertyCondition(p.Property, p.Value)
		if err != nil {
			acc.Release()
			return nil, fmt.Errorf("create condition %s: %w", p, err)
		}
		next, err := auto.AndCondition(acc, leaf)
		// The AND condition holds its own references to both operands.
		leaf.Release()
		acc.Release()
		if err != nil {
			return nil, fmt.Errorf("combine condition %s: %w", p, err)
		}
		acc = next
	}
	return acc, nil
}

// DescribePredicates renders preds as a comma-separated list.
func DescribePredicates(preds []PropertyPredicate) string {
	if len(preds) == 0 {
		return "true"
	}
	parts := make([]string, len(preds))
	for i, p := range preds {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

// PresetDescription names a preset and its rendered predicates.
type PresetDescription struct {
	Name      string `yaml:"name"      json:"name"`
	Condition string `yaml:"condition" json:"condition"`
	Default   bool   `yaml:"default,omitempty" json:"default,omitempty"`
}

// DescribePresets lists every preset in name order.
func DescribePresets() []PresetDescription {
	names := PresetNames()
	out := make([]PresetDescription, len(names))
	for i, name := range names {
		out[i] = PresetDescription{
			Name:      name,
			Condition: DescribePredicates(Presets[name]),
			Default:   name == DefaultPreset,
		}
	}
	return out
}
