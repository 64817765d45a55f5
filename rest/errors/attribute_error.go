package errors

import "fmt"

// AttributeError reports an operation name that is not part of the route table
type AttributeError struct {
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("client has no operation '%s'", e.Name)
}

func NewAttributeError(name string) error {
	return &AttributeError{Name: name}
}
