package errors

// ValueError reports a configuration or usage problem detected before or after a request,
// such as a missing API key, a missing required parameter or an unsuccessful response envelope
type ValueError struct {
	msg string
}

func (e *ValueError) Error() string {
	return e.msg
}

func NewValueError(text string) error {
	return &ValueError{text}
}
