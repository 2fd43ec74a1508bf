// Package library holds the binder and song value types shared by the store,
// the report engine, and the terminal UI.
package library

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/binders/internal/constants"
)

type Binder struct {
	ID     int64  `json:"id"     yaml:"id"`
	Number int64  `json:"number" yaml:"number"`
	Label  string `json:"label"  yaml:"label"`
}

// IsDirector reports whether b is the director's binder, the master list
// every other binder is reconciled against.
func (b Binder) IsDirector() bool {
	return b.Number == constants.DirectorNumber
}

func (b Binder) Heading() string {
	return fmt.Sprintf("Binder %02d", b.Number)
}

type Song struct {
	ID       int64  `json:"id"       yaml:"id"`
	Title    string `json:"title"    yaml:"title"`
	Composer string `json:"composer" yaml:"composer"`
	Link     string `json:"link"     yaml:"link"`
}

// DisplayTitle is the title alone when no composer is set, otherwise
// "title - composer".
func (s Song) DisplayTitle() string {
	composer := strings.TrimSpace(s.Composer)
	if composer == "" {
		return s.Title
	}
	return fmt.Sprintf("%s - %s", s.Title, composer)
}

func (s Song) HasLink() bool {
	return strings.TrimSpace(s.Link) != ""
}

// Matches reports a case-insensitive substring match on title or composer.
func (s Song) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Composer), q)
}

// FindDirector returns the director's binder from binders, if present.
func FindDirector(binders []Binder) (Binder, bool) {
	for _, b := range binders {
		if b.IsDirector() {
			return b, true
		}
	}
	return Binder{}, false
}

// NextNumber is one past the highest binder number, or 1 for an empty list.
func NextNumber(binders []Binder) int64 {
	var max int64
	for _, b := range binders {
		if b.Number > max {
			max = b.Number
		}
	}
	return max + 1
}
