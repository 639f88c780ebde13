//go:build windows && (amd64 || arm64)

package windows

import (
	"unsafe"

	"github.com/mj1618/selwatch/internal/platform"
)

// TextPattern wraps IUIAutomationTextPattern; caret is set when the object
// is an IUIAutomationTextPattern2.
type TextPattern struct {
	obj   comObject
	caret bool
}

// Selection returns the selected ranges in provider order. The caller
// releases each range.
func (p *TextPattern) Selection() ([]platform.TextRange, error) {
	arr, err := p.obj.out("GetSelection", slotGetSelection)
	if err != nil {
		if platform.IsEmptyResult(err) {
			return nil, nil
		}
		return nil, err
	}
	defer arr.release()

	var n int32
	if err := arr.invoke("get_Length", slotGetLength, uintptr(unsafe.Pointer(&n))); err != nil {
		return nil, err
	}
	ranges := make([]platform.TextRange, 0, n)
	for i := int32(0); i < n; i++ {
		r, err := arr.out("GetElement", slotGetElement, uintptr(i))
		if err != nil {
			for _, got := range ranges {
				got.Release()
			}
			return nil, err
		}
		ranges = append(ranges, &TextRange{obj: r})
	}
	return ranges, nil
}

// CaretRange returns the degenerate range at the caret and whether the caret
// is active. r is nil when the provider has no caret range.
func (p *TextPattern) CaretRange() (active bool, r platform.TextRange, err error) {
	if !p.caret {
		return false, nil, &platform.ProviderError{Op: "GetCaretRange", Code: platform.E_NOINTERFACE}
	}
	var isActive int32 // BOOL
	var res unsafe.Pointer
	hr := p.obj.call(slotGetCaretRange, uintptr(unsafe.Pointer(&isActive)), uintptr(unsafe.Pointer(&res)))
	if !hr.Succeeded() {
		return false, nil, &platform.ProviderError{Op: "GetCaretRange", Code: hr}
	}
	if res == nil {
		return isActive != 0, nil, nil
	}
	return isActive != 0, &TextRange{obj: comObject{ptr: res}}, nil
}

func (p *TextPattern) Release() {
	p.obj.release()
	p.obj = comObject{}
}

// TextRange wraps IUIAutomationTextRange.
type TextRange struct {
	obj comObject
}

// Text returns up to maxLength characters; -1 means no limit.
func (r *TextRange) Text(maxLength int) (string, error) {
	return r.obj.bstr("GetText", slotGetText, uintptr(int32(maxLength)))
}

func (r *TextRange) Release() {
	r.obj.release()
	r.obj = comObject{}
}
