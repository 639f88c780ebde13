package probe

import (
	"fmt"

	"github.com/mj1618/selwatch/internal/platform"
)

// FindFirst searches root and all of its descendants for the first element
// matching cond, in the provider's traversal order.
//
// The result is three-way: (el, true, nil) on a match, (nil, false, nil) when
// the provider reports an empty result, and (nil, false, err) on any failure.
func FindFirst(root platform.Element, cond platform.Condition) (platform.Element, bool, error) {
	el, err := root.FindFirst(platform.ScopeSubtree, cond)
	if err != nil {
		// The provider reports "nothing matched" through the error channel
		// with a success status.
		if platform.IsEmptyResult(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find first in subtree: %w", err)
	}
	if el == nil {
		return nil, false, nil
	}
	return el, true, nil
}
