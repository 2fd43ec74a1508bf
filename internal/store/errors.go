package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Error is a store failure with a message fit for the status line. It
// matches ErrNotFound or ErrDuplicate through errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func duplicateNumber(number int64) error {
	return &Error{Kind: ErrDuplicate, Message: fmt.Sprintf("Binder number %d already exists.", number)}
}

var (
	errBinderNotFound = &Error{Kind: ErrNotFound, Message: "Binder not found"}
	errSongNotFound   = &Error{Kind: ErrNotFound, Message: "Song not found"}
	errLinkNotFound   = &Error{Kind: ErrNotFound, Message: "Song not linked to this binder"}
)
