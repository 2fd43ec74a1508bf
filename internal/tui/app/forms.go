package app

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Paintersrp/binders/internal/library"
)

const (
	requiredPlaceholder = "<required>"
	optionalPlaceholder = "<optional>"

	minAutocompleteLen = 2
)

type binderField int

const (
	binderNumberField binderField = iota
	binderLabelField
)

type binderForm struct {
	number string
	label  string
	active binderField
	err    string
}

// newBinderForm seeds the number field with next when it is positive.
func newBinderForm(next int64) *binderForm {
	f := &binderForm{}
	if next > 0 {
		f.number = strconv.FormatInt(next, 10)
	}
	return f
}

func binderFormFrom(b library.Binder) *binderForm {
	return &binderForm{
		number: strconv.FormatInt(b.Number, 10),
		label:  b.Label,
	}
}

func (f *binderForm) toggleField() {
	if f.active == binderNumberField {
		f.active = binderLabelField
	} else {
		f.active = binderNumberField
	}
}

// insert appends r to the active field. The number field only takes ASCII
// digits.
func (f *binderForm) insert(r rune) bool {
	switch f.active {
	case binderNumberField:
		if r < '0' || r > '9' {
			return false
		}
		f.number += string(r)
	case binderLabelField:
		if unicode.IsControl(r) {
			return false
		}
		f.label += string(r)
	}
	return true
}

func (f *binderForm) backspace() {
	switch f.active {
	case binderNumberField:
		f.number = dropLastRune(f.number)
	case binderLabelField:
		f.label = dropLastRune(f.label)
	}
}

func (f *binderForm) parse() (library.BinderInput, error) {
	return library.ParseBinderInput(f.number, f.label)
}

type songField int

const (
	songTitleField songField = iota
	songComposerField
	songLinkField
	songFieldCount
)

// songForm backs both song creation and editing. suggestion holds the
// composer offered for completion; autocompleteOff stays set after a
// suggestion is accepted or dismissed until the composer is edited again.
type songForm struct {
	title    string
	composer string
	link     string
	active   songField
	err      string

	suggestion      string
	autocompleteOff bool
}

func songFormFrom(s library.Song) *songForm {
	return &songForm{title: s.Title, composer: s.Composer, link: s.Link}
}

func (f *songForm) nextField() {
	f.active = (f.active + 1) % songFieldCount
	if f.active != songComposerField {
		f.suggestion = ""
	}
}

func (f *songForm) previousField() {
	f.active = (f.active + songFieldCount - 1) % songFieldCount
	if f.active != songComposerField {
		f.suggestion = ""
	}
}

func (f *songForm) insert(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	switch f.active {
	case songTitleField:
		f.title += string(r)
	case songComposerField:
		f.autocompleteOff = false
		f.composer += string(r)
	case songLinkField:
		f.link += string(r)
	}
	return true
}

func (f *songForm) backspace() {
	switch f.active {
	case songTitleField:
		f.title = dropLastRune(f.title)
	case songComposerField:
		f.composer = dropLastRune(f.composer)
		f.autocompleteOff = false
	case songLinkField:
		f.link = dropLastRune(f.link)
	}
}

func (f *songForm) parse() (library.SongInput, error) {
	return library.ParseSongInput(f.title, f.composer, f.link)
}

// updateSuggestion offers the first composer, in list order, that starts
// with the typed text ignoring case and is longer than it.
func (f *songForm) updateSuggestion(composers []string) {
	f.suggestion = ""
	if f.active != songComposerField || f.autocompleteOff {
		return
	}
	if utf8.RuneCountInString(f.composer) < minAutocompleteLen {
		return
	}

	typed := strings.ToLower(f.composer)
	for _, candidate := range composers {
		lower := strings.ToLower(candidate)
		if !strings.HasPrefix(lower, typed) {
			continue
		}
		if lower != typed {
			f.suggestion = candidate
		}
		return
	}
}

func (f *songForm) hasActiveSuggestion() bool {
	return f.active == songComposerField && f.suggestion != ""
}

// suggestionSuffix is the part of the suggestion not yet typed, shown as a
// ghosted hint after the cursor.
func (f *songForm) suggestionSuffix() string {
	if f.suggestion == "" {
		return ""
	}
	typed := utf8.RuneCountInString(f.composer)
	runes := []rune(f.suggestion)
	if typed >= len(runes) {
		return ""
	}
	return string(runes[typed:])
}

func (f *songForm) acceptSuggestion() bool {
	if f.suggestionSuffix() == "" {
		return false
	}
	f.composer = f.suggestion
	f.suggestion = ""
	f.autocompleteOff = true
	return true
}

// cancelAutocomplete dismisses a visible suggestion. It reports false when
// there was nothing to dismiss so Esc can close the form instead.
func (f *songForm) cancelAutocomplete() bool {
	if !f.hasActiveSuggestion() {
		return false
	}
	f.suggestion = ""
	f.autocompleteOff = true
	return true
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
