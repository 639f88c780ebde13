//go:build windows && (amd64 || arm64)

package windows

import (
	"errors"
	"fmt"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/selwatch/internal/platform"
)

// Pointer reads the mouse cursor position.
type Pointer struct{}

func NewPointer() *Pointer {
	return &Pointer{}
}

// CursorPos returns the cursor position in screen coordinates.
func (*Pointer) CursorPos() (platform.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		err := windows.GetLastError()
		if err == nil {
			err = errors.New("call failed")
		}
		return platform.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return platform.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}
