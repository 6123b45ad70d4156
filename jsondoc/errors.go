package jsondoc

import "fmt"

// ParseError reports malformed input text.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// TypeMismatchError reports a Node accessed as the wrong kind.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}

// LogicError reports a Builder call made in a state that does not allow it.
type LogicError struct {
	Op     string
	Reason string
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("builder: %s: %s", e.Op, e.Reason)
}
