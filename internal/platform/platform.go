package platform

// Automation is the entry point of the accessibility provider.
// It resolves elements and constructs search conditions.
type Automation interface {
	// ElementFromPoint returns the element at the given screen coordinates.
	ElementFromPoint(pt Point) (Element, error)

	// FocusedElement returns the element that currently has keyboard focus.
	FocusedElement() (Element, error)

	TrueCondition() (Condition, error)
	PropertyCondition(prop PropertyID, value bool) (Condition, error)
	AndCondition(a, b Condition) (Condition, error)
}

// Element is a handle to a node in the live accessibility tree.
// Every method is a remote query and may fail if the UI has changed.
type Element interface {
	// FindFirst returns the first element within scope matching cond.
	// When nothing matches, the provider answers with a *ProviderError
	// whose code is a success status; see IsEmptyResult.
	FindFirst(scope TreeScope, cond Condition) (Element, error)

	// TextPattern acquires a text capability of the element by pattern id.
	TextPattern(id PatternID) (TextPattern, error)

	// Info reads descriptive properties of the element.
	Info() (ElementInfo, error)

	Release()
}

// Condition is a provider-side predicate over element properties.
type Condition interface {
	Release()
}

// TextPattern exposes the text content of an element.
type TextPattern interface {
	// Selection returns the current selection ranges in provider order.
	Selection() ([]TextRange, error)

	// CaretRange returns the caret range and whether the caret is active.
	// The range may be nil even when active is true.
	CaretRange() (active bool, r TextRange, err error)

	Release()
}

// TextRange is a contiguous span of text within a TextPattern.
type TextRange interface {
	// Text returns at most maxLength characters of the range (-1 = unbounded).
	Text(maxLength int) (string, error)

	Release()
}

// PointerLocator reads the current mouse pointer position.
type PointerLocator interface {
	CursorPos() (Point, error)
}
