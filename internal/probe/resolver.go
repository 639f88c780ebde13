package probe

import (
	"fmt"
	"strings"

	"github.com/mj1618/selwatch/internal/platform"
)

// Source selects how the current element is resolved.
type Source string

const (
	SourceFocus   Source = "focus"
	SourcePointer Source = "pointer"
)

// ParseSource converts a flag value to a Source.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "focus", "focused":
		return SourceFocus, nil
	case "pointer", "cursor", "mouse":
		return SourcePointer, nil
	default:
		return "", fmt.Errorf("unknown source: %q (expected focus or pointer)", s)
	}
}

// Resolver turns an input signal into an element handle. It holds no state
// besides the provider backends; every call asks the provider afresh.
type Resolver struct {
	auto    platform.Automation
	pointer platform.PointerLocator
}

// NewResolver creates a Resolver. pointer may be nil if only focus resolution is used.
func NewResolver(auto platform.Automation, pointer platform.PointerLocator) *Resolver {
	return &Resolver{auto: auto, pointer: pointer}
}

// ResolveByPointer returns the element at the given screen position.
func (r *Resolver) ResolveByPointer(pt platform.Point) (platform.Element, error) {
	el, err := r.auto.ElementFromPoint(pt)
	if err != nil {
		return nil, fmt.Errorf("element at (%d,%d): %w", pt.X, pt.Y, err)
	}
	return el, nil
}

// ResolveFocused returns the element holding keyboard focus.
func (r *Resolver) ResolveFocused() (platform.Element, error) {
	el, err := r.auto.FocusedElement()
	if err != nil {
		return nil, fmt.Errorf("focused element: %w", err)
	}
	return el, nil
}

// Resolve returns the current element for src.
func (r *Resolver) Resolve(src Source) (platform.Element, error) {
	switch src {
	case SourcePointer:
		if r.pointer == nil {
			return nil, fmt.Errorf("pointer location not available on this platform")
		}
		pt, err := r.pointer.CursorPos()
		if err != nil {
			return nil, fmt.Errorf("cursor position: %w", err)
		}
		return r.ResolveByPointer(pt)
	case SourceFocus, "":
		return r.ResolveFocused()
	default:
		return nil, fmt.Errorf("unknown source: %q", src)
	}
}
