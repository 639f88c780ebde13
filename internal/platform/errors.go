package platform

import (
	"errors"
	"fmt"
)

// HRESULT is a COM status code.
type HRESULT uint32

// Status codes the core pipeline inspects.
const (
	S_OK                      HRESULT = 0x00000000
	S_FALSE                   HRESULT = 0x00000001
	E_NOINTERFACE             HRESULT = 0x80004002
	E_FAIL                    HRESULT = 0x80004005
	UIA_E_ELEMENTNOTAVAILABLE HRESULT = 0x80040201
)

// Succeeded reports whether the code is a success status.
func (hr HRESULT) Succeeded() bool {
	return int32(hr) >= 0
}

func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}

// ProviderError is returned by any failed accessibility provider call.
//
// A ProviderError with a success code is how the provider reports an empty
// result (no element matched, no focused element). Callers that need to tell
// the two apart use IsEmptyResult.
type ProviderError struct {
	Op   string
	Code HRESULT
}

func (e *ProviderError) Error() string {
	if e.Code.Succeeded() {
		return fmt.Sprintf("%s: empty result (hresult %s)", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: hresult %s", e.Op, e.Code)
}

// IsEmptyResult reports whether err is a ProviderError carrying a success
// status, i.e. the call succeeded but produced nothing.
func IsEmptyResult(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code.Succeeded()
	}
	return false
}
