package domain

import (
	"errors"
	"fmt"
)

var (
	ErrViewNotFound      = errors.New("view not found")
	ErrUnknownViewKind   = errors.New("unknown view kind")
	ErrDanglingReference = errors.New("dangling model reference")
	ErrInvalidWorkspace  = errors.New("invalid workspace")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
)

type ViewNotFoundError struct {
	Kind ViewKind
	Key  string
}

func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("%s view was not found: %s", e.Kind, e.Key)
}

func (e *ViewNotFoundError) Is(target error) bool {
	return target == ErrViewNotFound
}

// UnknownViewKindError signals a view variant the engine does not handle.
// It is a programming defect, never a client error.
type UnknownViewKindError struct {
	Kind ViewKind
}

func (e *UnknownViewKindError) Error() string {
	return fmt.Sprintf("unknown view kind %q", string(e.Kind))
}

func (e *UnknownViewKindError) Is(target error) bool {
	return target == ErrUnknownViewKind
}

// DanglingReferenceError is returned at request time when a view refers to
// an element or relationship the workspace does not contain.
type DanglingReferenceError struct {
	View   string
	Field  string
	Target string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("view %q: %s %q does not exist", e.View, e.Field, e.Target)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}
