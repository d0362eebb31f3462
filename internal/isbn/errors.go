package isbn

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an input failed to parse.
type ErrorKind int

const (
	// WrongLength means the input did not contain exactly 10 or 13 digits.
	WrongLength ErrorKind = iota
	// FailedCheck10 means a 10-digit input failed the ISBN-10 checksum.
	FailedCheck10
	// FailedCheck13 means a 13-digit input failed the ISBN-13 checksum.
	FailedCheck13
)

func (k ErrorKind) String() string {
	switch k {
	case WrongLength:
		return "wrong length"
	case FailedCheck10:
		return "failed ISBN-10 check"
	case FailedCheck13:
		return "failed ISBN-13 check"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parse for any input that is not a valid ISBN.
type ParseError struct {
	Input string
	Kind  ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// KindOf returns the ErrorKind of a (possibly wrapped) ParseError.
func KindOf(err error) (ErrorKind, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind, true
	}
	return 0, false
}
