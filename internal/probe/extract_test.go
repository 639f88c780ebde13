package probe

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/selwatch/internal/model"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/platform/fake"
)

func matchedElement(t *testing.T, text *fake.Text) (*fake.Automation, platform.Element) {
	t.Helper()
	auto := &fake.Automation{Focused: textNode("editor", text)}
	el, err := auto.FocusedElement()
	require.NoError(t, err)
	return auto, el
}

func TestNewExtractor_Default(t *testing.T) {
	assert.Equal(t, DefaultMaxChars, NewExtractor(0).MaxChars)
	assert.Equal(t, DefaultMaxChars, NewExtractor(-5).MaxChars)
	assert.Equal(t, 42, NewExtractor(42).MaxChars)
}

func TestExtractSelection_Ordered(t *testing.T) {
	auto, el := matchedElement(t, &fake.Text{Selection: []string{"first", "second", "third"}})
	defer el.Release()

	ranges, err := NewExtractor(0).ExtractSelection(el)
	require.NoError(t, err)
	assert.Equal(t, []model.Range{
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
		{Index: 2, Text: "third"},
	}, ranges)
	assert.Equal(t, 1, auto.Live(), "pattern and ranges should be released")
}

func TestExtractSelection_Empty(t *testing.T) {
	_, el := matchedElement(t, &fake.Text{})
	ranges, err := NewExtractor(0).ExtractSelection(el)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestExtractSelection_Truncates(t *testing.T) {
	long := strings.Repeat("abcdé", 100)
	for _, ignore := range []bool{false, true} {
		_, el := matchedElement(t, &fake.Text{Selection: []string{long, "ok"}, IgnoreMaxLength: ignore})

		ranges, err := NewExtractor(10).ExtractSelection(el)
		require.NoError(t, err)
		require.Len(t, ranges, 2)
		for _, r := range ranges {
			assert.LessOrEqual(t, utf8.RuneCountInString(r.Text), 10, "provider ignores max: %v", ignore)
		}
		assert.Equal(t, "abcdéabcdé", ranges[0].Text)
		assert.Equal(t, "ok", ranges[1].Text)
	}
}

func TestExtractSelection_NoTextPattern(t *testing.T) {
	auto := &fake.Automation{Focused: &fake.Node{Name: "stale",
		Props: props(platform.PropTextPattern2Available, true)}}
	el, err := auto.FocusedElement()
	require.NoError(t, err)

	_, err = NewExtractor(0).ExtractSelection(el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire text pattern")
	var pe *platform.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, platform.E_NOINTERFACE, pe.Code)
}

func TestExtractSelection_RangeTextError(t *testing.T) {
	auto, el := matchedElement(t, &fake.Text{
		Selection: []string{"a", "b"},
		TextErr:   &platform.ProviderError{Op: "GetText", Code: platform.UIA_E_ELEMENTNOTAVAILABLE},
	})
	defer el.Release()

	_, err := NewExtractor(0).ExtractSelection(el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection range 0")
	assert.Equal(t, 1, auto.Live(), "ranges are released on error too")
}

func TestExtractCaret(t *testing.T) {
	tests := []struct {
		name   string
		text   *fake.Text
		wantOK bool
		want   string
	}{
		{"active with range", &fake.Text{CaretActive: true, Caret: strPtr("line 3")}, true, "line 3"},
		{"active empty range", &fake.Text{CaretActive: true, Caret: strPtr("")}, true, ""},
		{"inactive with range", &fake.Text{CaretActive: false, Caret: strPtr("stale")}, false, ""},
		{"active without range", &fake.Text{CaretActive: true}, false, ""},
		{"inactive without range", &fake.Text{}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auto, el := matchedElement(t, tt.text)
			defer el.Release()

			text, ok, err := NewExtractor(0).ExtractCaret(el)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, 1, auto.Live())
		})
	}
}

func TestExtractCaret_Truncates(t *testing.T) {
	_, el := matchedElement(t, &fake.Text{CaretActive: true, Caret: strPtr("0123456789"), IgnoreMaxLength: true})
	text, ok, err := NewExtractor(4).ExtractCaret(el)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0123", text)
}

func TestExtractCaret_ProviderError(t *testing.T) {
	_, el := matchedElement(t, &fake.Text{CaretErr: &platform.ProviderError{Op: "GetCaretRange", Code: platform.E_FAIL}})
	_, _, err := NewExtractor(0).ExtractCaret(el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get caret range")
}

func TestExtract_Snapshot(t *testing.T) {
	auto, el := matchedElement(t, &fake.Text{
		Selection:   []string{"sel"},
		CaretActive: true,
		Caret:       strPtr("caret"),
	})
	defer el.Release()

	snap, err := NewExtractor(0).Extract(el)
	require.NoError(t, err)
	assert.Equal(t, []model.Range{{Index: 0, Text: "sel"}}, snap.Selection)
	require.NotNil(t, snap.Caret)
	assert.Equal(t, "caret", *snap.Caret)
	assert.Equal(t, "input", snap.Element.Role)
	assert.Equal(t, "editor", snap.Element.Name)
	assert.NotZero(t, snap.TS)

	patterns := 0
	for _, c := range auto.Calls {
		if c == "TextPattern" {
			patterns++
		}
	}
	assert.Equal(t, 1, patterns, "pattern acquired once per extraction")
}

func TestExtract_InfoErrorIsNotFatal(t *testing.T) {
	node := textNode("editor", &fake.Text{Selection: []string{"x"}})
	node.InfoErr = errors.New("stale")
	auto := &fake.Automation{Focused: node}
	el, err := auto.FocusedElement()
	require.NoError(t, err)

	snap, err := NewExtractor(0).Extract(el)
	require.NoError(t, err)
	assert.Equal(t, model.Element{}, snap.Element)
	assert.Len(t, snap.Selection, 1)
}

func TestExtract_SelectionErrorIsFatal(t *testing.T) {
	_, el := matchedElement(t, &fake.Text{SelectionErr: &platform.ProviderError{Op: "GetSelection", Code: platform.E_FAIL}})
	_, err := NewExtractor(0).Extract(el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get selection")
}
