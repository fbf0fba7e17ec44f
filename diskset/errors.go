package diskset

import "fmt"

// ParseError indicates that a persisted set could not be decoded as a JSON
// array of the set's element type.
type ParseError struct {
	Name  string
	Cause error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("set %q has malformed content: %s", e.Name, e.Cause)
}

func (e ParseError) Unwrap() error {
	return e.Cause
}

// EncodingError indicates that the members of a set can not be represented as
// JSON without altering them, such as a string that is not valid UTF-8.
type EncodingError struct {
	Name string
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("set %q has members that can not be encoded as JSON without loss", e.Name)
}
