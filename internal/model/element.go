package model

import "github.com/mj1618/selwatch/internal/platform"

// Element describes the element whose text was extracted.
type Element struct {
	Role        string `yaml:"r"           json:"r"`           // Compact role code
	Name        string `yaml:"n,omitempty" json:"n,omitempty"` // Accessible name
	ClassName   string `yaml:"c,omitempty" json:"c,omitempty"` // Window class name
	ControlType int    `yaml:"ct"          json:"ct"`          // Raw UIA control type id
}

// ElementFromInfo converts provider properties to an Element.
func ElementFromInfo(info platform.ElementInfo) Element {
	return Element{
		Role:        MapControlType(info.ControlType),
		Name:        info.Name,
		ClassName:   info.ClassName,
		ControlType: info.ControlType,
	}
}
