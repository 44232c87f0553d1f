package domain

import (
	"errors"
	"fmt"
)

var (
	// Record errors
	ErrInvalidAmount  = errors.New("amount must be a number")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
	ErrInvalidDate    = errors.New("date is not a recognized calendar date")

	// User errors
	ErrInvalidDisplayName = errors.New("invalid display name")
	ErrUserNotFound       = errors.New("user not found")
)

// FetchError reports a failed retrieval of a remote collection.
// The collection it was meant to replace stays as it was.
type FetchError struct {
	Kind       Kind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s from %s: status %d: %v", e.Kind.Plural(), e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s from %s: %v", e.Kind.Plural(), e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MalformedRecordError reports a transaction record whose amount or date
// cannot be used. Index is the position in the source sequence, -1 for a
// single manually submitted record.
type MalformedRecordError struct {
	Index int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed record: %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed record %d: %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
