//go:build windows && (amd64 || arm64)

package windows

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/mj1618/selwatch/internal/platform"
)

// Vtable slots. IUnknown occupies 0-2.
const (
	slotRelease = 2

	// IUIAutomation
	slotElementFromPoint        = 7
	slotGetFocusedElement       = 8
	slotCreateTrueCondition     = 21
	slotCreatePropertyCondition = 23
	slotCreateAndCondition      = 25

	// IUIAutomationElement
	slotFindFirst             = 5
	slotGetCurrentPatternAs   = 14
	slotGetCurrentControlType = 21
	slotGetCurrentName        = 23
	slotGetCurrentClassName   = 30

	// IUIAutomationTextPattern / IUIAutomationTextPattern2
	slotGetSelection  = 5
	slotGetCaretRange = 10

	// IUIAutomationTextRangeArray
	slotGetLength  = 3
	slotGetElement = 4

	// IUIAutomationTextRange
	slotGetText = 12
)

// comObject is a raw interface pointer owned by the caller.
type comObject struct {
	ptr unsafe.Pointer
}

// call invokes vtable slot n with the object as the implicit first argument.
func (o comObject) call(n int, args ...uintptr) platform.HRESULT {
	vtbl := *(*unsafe.Pointer)(o.ptr)
	fn := *(*uintptr)(unsafe.Add(vtbl, n*int(unsafe.Sizeof(uintptr(0)))))
	r, _, _ := syscall.SyscallN(fn, append([]uintptr{uintptr(o.ptr)}, args...)...)
	return platform.HRESULT(uint32(r))
}

// invoke calls slot n and converts a failure status into a ProviderError.
func (o comObject) invoke(op string, n int, args ...uintptr) error {
	if hr := o.call(n, args...); !hr.Succeeded() {
		return &platform.ProviderError{Op: op, Code: hr}
	}
	return nil
}

// out calls slot n with args followed by a pointer-sized out parameter and
// returns the object written there. A success status with a NULL result is
// reported as an empty-result ProviderError.
func (o comObject) out(op string, n int, args ...uintptr) (comObject, error) {
	var res unsafe.Pointer
	hr := o.call(n, append(args, uintptr(unsafe.Pointer(&res)))...)
	if !hr.Succeeded() {
		return comObject{}, &platform.ProviderError{Op: op, Code: hr}
	}
	if res == nil {
		return comObject{}, &platform.ProviderError{Op: op, Code: hr}
	}
	return comObject{ptr: res}, nil
}

func (o comObject) release() {
	if o.ptr != nil {
		o.call(slotRelease)
	}
}

// bstr calls slot n with a trailing BSTR out parameter and frees the result.
func (o comObject) bstr(op string, n int, args ...uintptr) (string, error) {
	var b *uint16
	if err := o.invoke(op, n, append(args, uintptr(unsafe.Pointer(&b)))...); err != nil {
		return "", err
	}
	if b == nil {
		return "", nil
	}
	defer ole.SysFreeString((*int16)(unsafe.Pointer(b)))
	return ole.BstrToString(b), nil
}
