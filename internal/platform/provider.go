package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the accessibility session and input backends for the current OS.
// It is created once at startup and must be closed on exit.
type Provider struct {
	Automation Automation
	Pointer    PointerLocator

	// close tears down the provider session. Set by the platform package.
	close func() error
}

// NewSession wraps backends into a Provider. closeFn may be nil.
func NewSession(auto Automation, pointer PointerLocator, closeFn func() error) *Provider {
	return &Provider{Automation: auto, Pointer: pointer, close: closeFn}
}

// Close releases the provider session. It is safe to call more than once.
func (p *Provider) Close() error {
	if p == nil || p.close == nil {
		return nil
	}
	fn := p.close
	p.close = nil
	return fn()
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("selwatch is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the UI Automation registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
