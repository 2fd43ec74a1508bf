package library

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

const (
	MsgBinderNumberRequired = "Binder number is required."
	MsgBinderNumberInteger  = "Binder number must be an integer."
	MsgBinderLabelRequired  = "Binder label is required."
	MsgSongTitleRequired    = "Song title is required."
)

// ValidationError carries the message shown to the user next to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type BinderInput struct {
	Number int64
	Label  string `validate:"required"`
}

type SongInput struct {
	Title    string `validate:"required"`
	Composer string
	Link     string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldMessages = map[string]string{
	"BinderInput.Label": MsgBinderLabelRequired,
	"SongInput.Title":   MsgSongTitleRequired,
}

// Normalize trims surrounding whitespace and composes the text to NFC so the
// same title typed on different keyboards compares equal in the store.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseBinderInput validates raw form values for a binder.
func ParseBinderInput(number, label string) (BinderInput, error) {
	raw := strings.TrimSpace(number)
	if raw == "" {
		return BinderInput{}, &ValidationError{Field: "Number", Message: MsgBinderNumberRequired}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return BinderInput{}, &ValidationError{Field: "Number", Message: MsgBinderNumberInteger}
	}

	in := BinderInput{Number: n, Label: Normalize(label)}
	if err := check(in); err != nil {
		return BinderInput{}, err
	}
	return in, nil
}

// ParseSongInput validates raw form values for a song. Composer and link are
// optional and stored trimmed.
func ParseSongInput(title, composer, link string) (SongInput, error) {
	in := SongInput{
		Title:    Normalize(title),
		Composer: Normalize(composer),
		Link:     strings.TrimSpace(link),
	}
	if err := check(in); err != nil {
		return SongInput{}, err
	}
	return in, nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	msg, ok := fieldMessages[first.StructNamespace()]
	if !ok {
		msg = first.Error()
	}
	return &ValidationError{Field: first.Field(), Message: msg}
}
