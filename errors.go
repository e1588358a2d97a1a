package ethabi

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidData indicates the input bytes are not a valid encoding
	// of the requested types.
	ErrInvalidData = errors.New("ethabi: invalid data")

	// ErrEmptyData indicates an empty buffer was decoded against types that
	// require content. Empty return data usually means the contract or
	// method does not exist at the called address.
	ErrEmptyData = errors.New("ethabi: cannot decode empty data; the contract or method probably does not exist")

	// ErrInvalidType indicates a malformed type description.
	ErrInvalidType = errors.New("ethabi: invalid type")

	// ErrInvalidValue indicates a value string that cannot be parsed as the
	// requested type.
	ErrInvalidValue = errors.New("ethabi: invalid value")
)

// TypeMismatchError indicates a token's shape doesn't match the expected type.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ethabi: type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrInvalidData
}

// NotFoundError indicates a contract has no entry with the requested name,
// signature, or identifier.
type NotFoundError struct {
	What string // "function", "event", "error" or "constructor"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ethabi: %s %q not found", e.What, e.Name)
}

// AmbiguousNameError indicates a bare name matched several overloads.
// Retry the lookup with one of the listed full signatures.
type AmbiguousNameError struct {
	Name       string
	Signatures []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("ethabi: name %q is ambiguous, use a full signature: %s",
		e.Name, strings.Join(e.Signatures, ", "))
}

// TopicMismatchError indicates a log carries a different number of topics
// than the event declares.
type TopicMismatchError struct {
	Event    string
	Expected int
	Got      int
}

func (e *TopicMismatchError) Error() string {
	return fmt.Sprintf("ethabi: event %q expects %d topics, log has %d", e.Event, e.Expected, e.Got)
}
