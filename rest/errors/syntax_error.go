package errors

// SyntaxError reports a filter string that does not match the filter grammar
type SyntaxError struct {
	Text string
}

func (e *SyntaxError) Error() string {
	return "Invalid filter syntax: " + e.Text
}

func NewSyntaxError(text string) error {
	return &SyntaxError{Text: text}
}
