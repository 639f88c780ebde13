// Package fake provides an in-memory accessibility provider for tests.
// It models a static element tree with boolean properties and text state,
// and counts outstanding handles so callers can check release discipline.
package fake

import (
	"fmt"
	"unicode/utf8"

	"github.com/mj1618/selwatch/internal/platform"
)

// Node is one element in the fake tree.
type Node struct {
	Name        string
	ClassName   string
	ControlType int
	Props       map[platform.PropertyID]bool
	Children    []*Node

	// Text is the TextPattern2 state. Nil means the pattern is unavailable.
	Text *Text

	InfoErr error
}

// Text is the text-pattern state of a Node.
type Text struct {
	Selection   []string
	CaretActive bool
	Caret       *string // nil means no caret range is returned

	SelectionErr error
	CaretErr     error
	TextErr      error

	// IgnoreMaxLength makes ranges return their full text regardless of the
	// requested maximum, like a misbehaving provider.
	IgnoreMaxLength bool
}

// Automation implements platform.Automation and platform.PointerLocator.
type Automation struct {
	Focused  *Node
	FocusErr error

	// AtPoint resolves ElementFromPoint. Nil means no element anywhere.
	AtPoint  func(pt platform.Point) *Node
	PointErr error

	Cursor    platform.Point
	CursorErr error

	FindErr      error
	ConditionErr error

	// Calls records provider method names in call order.
	Calls []string

	live int
}

var (
	_ platform.Automation     = (*Automation)(nil)
	_ platform.PointerLocator = (*Automation)(nil)
)

// Live returns the number of acquired handles not yet released.
func (a *Automation) Live() int {
	return a.live
}

// Provider wraps the fake in a platform.Provider.
func (a *Automation) Provider() *platform.Provider {
	return platform.NewSession(a, a, nil)
}

func (a *Automation) record(call string) {
	a.Calls = append(a.Calls, call)
}

func (a *Automation) acquire() handle {
	a.live++
	return handle{auto: a}
}

type handle struct {
	auto     *Automation
	released bool
}

func (h *handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.auto.live--
}

func (a *Automation) CursorPos() (platform.Point, error) {
	a.record("CursorPos")
	if a.CursorErr != nil {
		return platform.Point{}, a.CursorErr
	}
	return a.Cursor, nil
}

func (a *Automation) ElementFromPoint(pt platform.Point) (platform.Element, error) {
	a.record("ElementFromPoint")
	if a.PointErr != nil {
		return nil, a.PointErr
	}
	var n *Node
	if a.AtPoint != nil {
		n = a.AtPoint(pt)
	}
	if n == nil {
		return nil, &platform.ProviderError{Op: "ElementFromPoint", Code: platform.UIA_E_ELEMENTNOTAVAILABLE}
	}
	return a.element(n), nil
}

func (a *Automation) FocusedElement() (platform.Element, error) {
	a.record("FocusedElement")
	if a.FocusErr != nil {
		return nil, a.FocusErr
	}
	if a.Focused == nil {
		return nil, &platform.ProviderError{Op: "GetFocusedElement", Code: platform.S_OK}
	}
	return a.element(a.Focused), nil
}

func (a *Automation) TrueCondition() (platform.Condition, error) {
	a.record("TrueCondition")
	if a.ConditionErr != nil {
		return nil, a.ConditionErr
	}
	return a.condition(func(*Node) bool { return true }), nil
}

func (a *Automation) PropertyCondition(prop platform.PropertyID, value bool) (platform.Condition, error) {
	a.record("PropertyCondition")
	if a.ConditionErr != nil {
		return nil, a.ConditionErr
	}
	return a.condition(func(n *Node) bool { return n.Props[prop] == value }), nil
}

func (a *Automation) AndCondition(x, y platform.Condition) (platform.Condition, error) {
	a.record("AndCondition")
	if a.ConditionErr != nil {
		return nil, a.ConditionErr
	}
	cx, ok1 := x.(*Condition)
	cy, ok2 := y.(*Condition)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("fake: AndCondition with foreign condition")
	}
	mx, my := cx.match, cy.match
	return a.condition(func(n *Node) bool { return mx(n) && my(n) }), nil
}

func (a *Automation) condition(match func(*Node) bool) *Condition {
	return &Condition{handle: a.acquire(), match: match}
}

func (a *Automation) element(n *Node) *Element {
	return &Element{handle: a.acquire(), node: n}
}

// Condition is a fake provider condition.
type Condition struct {
	handle
	match func(*Node) bool
}

// Matches evaluates the condition against a node.
func (c *Condition) Matches(n *Node) bool {
	return c.match(n)
}

// Element is a fake element handle.
type Element struct {
	handle
	node *Node
}

// Node returns the tree node behind the handle.
func (e *Element) Node() *Node {
	return e.node
}

func (e *Element) FindFirst(scope platform.TreeScope, cond platform.Condition) (platform.Element, error) {
	e.auto.record("FindFirst")
	if e.auto.FindErr != nil {
		return nil, e.auto.FindErr
	}
	c, ok := cond.(*Condition)
	if !ok {
		return nil, &platform.ProviderError{Op: "FindFirst", Code: platform.E_FAIL}
	}
	if n := findFirst(e.node, scope, c, 0); n != nil {
		return e.auto.element(n), nil
	}
	return nil, &platform.ProviderError{Op: "FindFirst", Code: platform.S_OK}
}

// findFirst walks the tree in pre-order, checking only depths the scope covers.
func findFirst(n *Node, scope platform.TreeScope, c *Condition, depth int) *Node {
	inScope := (depth == 0 && scope&platform.ScopeElement != 0) ||
		(depth == 1 && scope&platform.ScopeChildren != 0) ||
		(depth > 1 && scope&platform.ScopeDescendants != 0)
	if inScope && c.Matches(n) {
		return n
	}
	if depth >= 1 && scope&platform.ScopeDescendants == 0 {
		return nil
	}
	for _, child := range n.Children {
		if found := findFirst(child, scope, c, depth+1); found != nil {
			return found
		}
	}
	return nil
}

func (e *Element) TextPattern(id platform.PatternID) (platform.TextPattern, error) {
	e.auto.record("TextPattern")
	if id != platform.PatternText2 || e.node.Text == nil {
		return nil, &platform.ProviderError{Op: "GetCurrentPatternAs", Code: platform.E_NOINTERFACE}
	}
	return &TextPattern{handle: e.auto.acquire(), text: e.node.Text}, nil
}

func (e *Element) Info() (platform.ElementInfo, error) {
	e.auto.record("Info")
	if e.node.InfoErr != nil {
		return platform.ElementInfo{}, e.node.InfoErr
	}
	return platform.ElementInfo{
		Name:        e.node.Name,
		ClassName:   e.node.ClassName,
		ControlType: e.node.ControlType,
	}, nil
}

// TextPattern is a fake text pattern handle.
type TextPattern struct {
	handle
	text *Text
}

func (p *TextPattern) Selection() ([]platform.TextRange, error) {
	p.auto.record("GetSelection")
	if p.text.SelectionErr != nil {
		return nil, p.text.SelectionErr
	}
	ranges := make([]platform.TextRange, 0, len(p.text.Selection))
	for _, s := range p.text.Selection {
		ranges = append(ranges, p.textRange(s))
	}
	return ranges, nil
}

func (p *TextPattern) CaretRange() (bool, platform.TextRange, error) {
	p.auto.record("GetCaretRange")
	if p.text.CaretErr != nil {
		return false, nil, p.text.CaretErr
	}
	if p.text.Caret == nil {
		return p.text.CaretActive, nil, nil
	}
	return p.text.CaretActive, p.textRange(*p.text.Caret), nil
}

func (p *TextPattern) textRange(s string) *TextRange {
	return &TextRange{handle: p.auto.acquire(), text: s, state: p.text}
}

// TextRange is a fake text range handle.
type TextRange struct {
	handle
	text  string
	state *Text
}

func (r *TextRange) Text(maxLength int) (string, error) {
	r.auto.record("GetText")
	if r.state.TextErr != nil {
		return "", r.state.TextErr
	}
	if maxLength < 0 || r.state.IgnoreMaxLength || utf8.RuneCountInString(r.text) <= maxLength {
		return r.text, nil
	}
	return string([]rune(r.text)[:maxLength]), nil
}
