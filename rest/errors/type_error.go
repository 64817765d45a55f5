package errors

import "fmt"

// TypeError reports a parameter value of an unsupported type, i.e. an invalid filter value
type TypeError struct {
	msg string
}

func (e *TypeError) Error() string {
	return e.msg
}

func NewTypeError(text string) error {
	return &TypeError{text}
}

func NewInvalidFilterError(value interface{}) error {
	return &TypeError{fmt.Sprintf("invalid filter value: %v (type %T)", value, value)}
}
