package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertyID identifies a UI Automation element property.
type PropertyID int

// Boolean properties used to build search conditions.
const (
	PropValuePatternAvailable PropertyID = 30043
	PropValueIsReadOnly       PropertyID = 30046
	PropTextPattern2Available PropertyID = 30119
)

var propertyNames = map[PropertyID]string{
	PropTextPattern2Available: "text-pattern2",
	PropValuePatternAvailable: "value-pattern",
	PropValueIsReadOnly:       "value-read-only",
}

// String returns the short CLI name of the property.
func (p PropertyID) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return "property-" + strconv.Itoa(int(p))
}

// ParsePropertyID converts a short property name to its PropertyID.
func ParsePropertyID(s string) (PropertyID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for id, n := range propertyNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown property: %q (expected text-pattern2, value-pattern, or value-read-only)", s)
}

// PatternID identifies a UI Automation control pattern.
type PatternID int

const (
	PatternText  PatternID = 10014
	PatternText2 PatternID = 10024
)

// TreeScope selects which part of the tree a search covers.
type TreeScope int

const (
	ScopeElement     TreeScope = 0x1
	ScopeChildren    TreeScope = 0x2
	ScopeDescendants TreeScope = 0x4
	ScopeSubtree     TreeScope = ScopeElement | ScopeChildren | ScopeDescendants
)

// Point is a screen coordinate in pixels.
type Point struct {
	X, Y int
}

// ElementInfo holds descriptive properties of an element.
type ElementInfo struct {
	Name        string
	ClassName   string
	ControlType int
}
