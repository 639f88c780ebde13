//go:build windows && (amd64 || arm64)

package windows

import (
	"fmt"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/mj1618/selwatch/internal/platform"
)

var (
	iidTextPattern  = ole.NewGUID("{32eba289-3583-42c9-9c59-3b6d9a1e9b6a}")
	iidTextPattern2 = ole.NewGUID("{506a921a-fcc9-409f-b23b-37eb74106872}")
)

// Element wraps IUIAutomationElement.
type Element struct {
	obj comObject
}

var _ platform.Element = (*Element)(nil)

// FindFirst returns the first element in scope matching cond. A miss is
// reported as an empty-result ProviderError.
func (e *Element) FindFirst(scope platform.TreeScope, cond platform.Condition) (platform.Element, error) {
	c, ok := cond.(*Condition)
	if !ok {
		return nil, fmt.Errorf("find first: unsupported condition type %T", cond)
	}
	o, err := e.obj.out("FindFirst", slotFindFirst, uintptr(scope), uintptr(c.obj.ptr))
	if err != nil {
		return nil, err
	}
	return &Element{obj: o}, nil
}

// TextPattern acquires the TextPattern or TextPattern2 interface.
func (e *Element) TextPattern(id platform.PatternID) (platform.TextPattern, error) {
	var iid *ole.GUID
	switch id {
	case platform.PatternText2:
		iid = iidTextPattern2
	case platform.PatternText:
		iid = iidTextPattern
	default:
		return nil, fmt.Errorf("pattern %d is not a text pattern", id)
	}
	o, err := e.obj.out("GetCurrentPatternAs", slotGetCurrentPatternAs, uintptr(id), uintptr(unsafe.Pointer(iid)))
	if err != nil {
		if platform.IsEmptyResult(err) {
			// Unsupported patterns come back as S_OK with a NULL pointer.
			return nil, &platform.ProviderError{Op: "GetCurrentPatternAs", Code: platform.E_NOINTERFACE}
		}
		return nil, err
	}
	return &TextPattern{obj: o, caret: id == platform.PatternText2}, nil
}

// Info reads the current name, class name and control type.
func (e *Element) Info() (platform.ElementInfo, error) {
	var info platform.ElementInfo
	var ct int32
	if err := e.obj.invoke("get_CurrentControlType", slotGetCurrentControlType, uintptr(unsafe.Pointer(&ct))); err != nil {
		return info, err
	}
	info.ControlType = int(ct)

	var err error
	if info.Name, err = e.obj.bstr("get_CurrentName", slotGetCurrentName); err != nil {
		return info, err
	}
	if info.ClassName, err = e.obj.bstr("get_CurrentClassName", slotGetCurrentClassName); err != nil {
		return info, err
	}
	return info, nil
}

func (e *Element) Release() {
	e.obj.release()
	e.obj = comObject{}
}
