//go:build windows && (amd64 || arm64)

package windows

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/mj1618/selwatch/internal/platform"
)

var (
	clsidCUIAutomation8 = ole.NewGUID("{e22ad333-b25f-460c-83d0-0581107395c9}")
	clsidCUIAutomation  = ole.NewGUID("{ff48dba4-60ef-4201-aa87-54103eef594e}")
	iidIUIAutomation    = ole.NewGUID("{30cbe57d-d9d0-452a-ab13-7ac5ac4825ee}")
)

// session owns COM initialization and the root IUIAutomation object for the
// life of the process.
type session struct {
	automation *Automation
	once       sync.Once
}

// openSession initializes COM on the calling thread and creates the
// automation object. The goroutine stays locked to its OS thread until close.
func openSession() (*session, error) {
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		// S_FALSE: already initialized on this thread; still needs a balancing uninit.
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || platform.HRESULT(oleErr.Code()) != platform.S_FALSE {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}

	unk, err := ole.CreateInstance(clsidCUIAutomation8, iidIUIAutomation)
	if err != nil {
		// Windows 7 has no CUIAutomation8.
		unk, err = ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	}
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("create UI Automation instance: %w", err)
	}

	return &session{
		automation: &Automation{obj: comObject{ptr: unsafe.Pointer(unk)}},
	}, nil
}

// close releases the automation object and uninitializes COM. It must run on
// the goroutine that called openSession.
func (s *session) close() error {
	s.once.Do(func() {
		s.automation.obj.release()
		s.automation.obj = comObject{}
		ole.CoUninitialize()
		runtime.UnlockOSThread()
	})
	return nil
}
