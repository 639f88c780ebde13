// Package windows provides the UI Automation provider on Windows.
// It talks to the CUIAutomation8 COM object through go-ole and raw vtable
// calls. On other platforms the package is empty and platform.NewProvider
// returns platform.ErrUnsupported.
package windows
