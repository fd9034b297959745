package arindex

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingGlobalHeader indicates that the archive file is invalid because its global
	// header is missing (i.e., because the file is shorter than 8 bytes). It always appears wrapped
	// together with ErrInvalidGlobalHeader.
	ErrMissingGlobalHeader = errors.New("ar: missing global header")

	// ErrInvalidGlobalHeader indicates that the archive file is invalid because its global
	// header is malformed (i.e., not the string "!<arch>\n").
	ErrInvalidGlobalHeader = errors.New("ar: invalid global header")

	// ErrMalformedHeader indicates that a member header could not be decoded. Offsets of all later
	// members depend on it, so the archive as a whole is rejected.
	ErrMalformedHeader = errors.New("ar: malformed member header")

	// ErrDuplicateMember is returned by archives built with WithStrictDuplicates when two members
	// share a name.
	ErrDuplicateMember = errors.New("ar: duplicate member name")
)

// HeaderError records which member header failed to decode.
type HeaderError struct {
	// Offset is the byte offset of the member's header within the archive.
	Offset int64
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("ar: member header at offset %d: %s", e.Offset, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// Is reports every HeaderError as an ErrMalformedHeader, whatever its cause.
func (e *HeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}

// ErrFileName indicates a problem with the file name in one of the archive's file headers.
type ErrFileName struct {
	Name string
	Err  error
}

func (e *ErrFileName) Error() string {
	return fmt.Sprintf("ar: archive member '%s': %s", e.Name, e.Err)
}

func (e *ErrFileName) Unwrap() error {
	return e.Err
}

// ErrNumericField indicates that a numeric header field holds something other than a number in
// the field's base.
type ErrNumericField struct {
	Field string
	Value string
	Err   error
}

func (e *ErrNumericField) Error() string {
	return fmt.Sprintf("ar: %s field %q: %s", e.Field, e.Value, e.Err)
}

func (e *ErrNumericField) Unwrap() error {
	return e.Err
}
