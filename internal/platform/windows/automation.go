//go:build windows && (amd64 || arm64)

package windows

import (
	"fmt"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/mj1618/selwatch/internal/platform"
)

// Automation wraps IUIAutomation.
type Automation struct {
	obj comObject
}

var _ platform.Automation = (*Automation)(nil)

// ElementFromPoint returns the element at screen coordinates pt.
func (a *Automation) ElementFromPoint(pt platform.Point) (platform.Element, error) {
	o, err := a.obj.out("ElementFromPoint", slotElementFromPoint, packPoint(pt))
	if err != nil {
		return nil, err
	}
	return &Element{obj: o}, nil
}

// FocusedElement returns the element with keyboard focus.
func (a *Automation) FocusedElement() (platform.Element, error) {
	o, err := a.obj.out("GetFocusedElement", slotGetFocusedElement)
	if err != nil {
		return nil, err
	}
	return &Element{obj: o}, nil
}

func (a *Automation) TrueCondition() (platform.Condition, error) {
	o, err := a.obj.out("CreateTrueCondition", slotCreateTrueCondition)
	if err != nil {
		return nil, err
	}
	return &Condition{obj: o}, nil
}

func (a *Automation) PropertyCondition(prop platform.PropertyID, value bool) (platform.Condition, error) {
	v := ole.NewVariant(ole.VT_BOOL, variantBool(value))
	// VARIANT is larger than a register, so the by-value argument is passed
	// as a pointer to a caller-owned copy.
	o, err := a.obj.out("CreatePropertyCondition", slotCreatePropertyCondition,
		uintptr(prop), uintptr(unsafe.Pointer(&v)))
	if err != nil {
		return nil, err
	}
	return &Condition{obj: o}, nil
}

func (a *Automation) AndCondition(x, y platform.Condition) (platform.Condition, error) {
	cx, okx := x.(*Condition)
	cy, oky := y.(*Condition)
	if !okx || !oky {
		return nil, fmt.Errorf("and condition: unsupported operand types %T, %T", x, y)
	}
	o, err := a.obj.out("CreateAndCondition", slotCreateAndCondition,
		uintptr(cx.obj.ptr), uintptr(cy.obj.ptr))
	if err != nil {
		return nil, err
	}
	return &Condition{obj: o}, nil
}

// Condition wraps IUIAutomationCondition.
type Condition struct {
	obj comObject
}

func (c *Condition) Release() {
	c.obj.release()
	c.obj = comObject{}
}

// packPoint lays out a POINT passed by value in a single register.
func packPoint(pt platform.Point) uintptr {
	return uintptr(uint32(int32(pt.X))) | uintptr(uint32(int32(pt.Y)))<<32
}

func variantBool(b bool) int64 {
	if b {
		return -1 // VARIANT_TRUE
	}
	return 0
}
