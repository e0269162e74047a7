package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError reports a payload rejected at the write boundary.
// Nothing has been written when it is returned.
type ValidationError struct {
	Collection string
	Reason     string
}

func (e ValidationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("%s: validation failed: %s", e.Collection, e.Reason)
}

// Is enables errors.Is matching on ValidationError.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for rejected payloads.
var ErrValidation = ValidationError{}

// DuplicateKeyError is returned when a unique index rejects a plain insert.
type DuplicateKeyError struct {
	Collection string
	Index      string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate key on %s", e.Collection, e.Index)
}

// Is enables errors.Is matching on DuplicateKeyError.
func (e DuplicateKeyError) Is(target error) bool {
	_, ok := target.(DuplicateKeyError)
	if ok {
		return true
	}
	_, ok = target.(*DuplicateKeyError)
	return ok
}

// ErrDuplicateKey is the sentinel error for unique index violations.
var ErrDuplicateKey = DuplicateKeyError{}
