package model

import "unicode/utf8"

// Range is one materialized selection range.
type Range struct {
	Index int    `yaml:"i" json:"i"`
	Text  string `yaml:"t" json:"t"`
}

// Snapshot is the text state extracted from one matched element in one poll cycle.
// It is never kept across cycles.
type Snapshot struct {
	TS        int64   `yaml:"ts"              json:"ts"`
	Source    string  `yaml:"source"          json:"source"`
	Element   Element `yaml:"element"         json:"element"`
	Selection []Range `yaml:"selection"       json:"selection"`
	Caret     *string `yaml:"caret,omitempty" json:"caret,omitempty"`
}

// HasCaret reports whether a caret range was found.
func (s Snapshot) HasCaret() bool {
	return s.Caret != nil
}

// Empty reports whether the snapshot has neither selection ranges nor a caret.
func (s Snapshot) Empty() bool {
	return len(s.Selection) == 0 && s.Caret == nil
}

// Truncate returns s cut to at most n runes. A negative n means no limit.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
