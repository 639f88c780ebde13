package platform

import (
	"errors"
	"runtime"
	"testing"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("skipping on non-windows")
	}
	// The windows package may or may not be linked into the test binary,
	// so only check that the call doesn't panic.
	p, _ := NewProvider()
	_ = p.Close()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestProviderClose_RunsOnce(t *testing.T) {
	calls := 0
	p := NewSession(nil, nil, func() error {
		calls++
		return nil
	})
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("close called %d times, want 1", calls)
	}
}

func TestProviderClose_PropagatesError(t *testing.T) {
	want := errors.New("CoUninitialize failed")
	p := NewSession(nil, nil, func() error { return want })
	if err := p.Close(); err != want {
		t.Errorf("Close() = %v, want %v", err, want)
	}
}

func TestProviderClose_NilSafe(t *testing.T) {
	var p *Provider
	if err := p.Close(); err != nil {
		t.Errorf("nil provider Close() = %v, want nil", err)
	}
}
