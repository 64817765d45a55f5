package errors

import (
	"errors"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// TranslateValidatorError takes an error from the go-playground validator (internally just a map of errors) and converts it into
// a ValueError with a user friendly message.
func TranslateValidatorError(err error, trans ut.Translator) error {
	switch err.(type) {
	case validator.ValidationErrors:
		errs := (err.(validator.ValidationErrors)).Translate(trans)

		vals := make([]string, 0, len(errs))

		for _, value := range errs {
			vals = append(vals, value)
		}

		// sort the messages first so that we have consistent ordering
		sort.Strings(vals)

		return NewValueError(strings.Join(vals, " "))
	default:
		return err
	}
}

func IsValue(err error) bool {
	var target *ValueError
	return errors.As(err, &target)
}

func IsType(err error) bool {
	var target *TypeError
	return errors.As(err, &target)
}

func IsAttribute(err error) bool {
	var target *AttributeError
	return errors.As(err, &target)
}

func IsSyntax(err error) bool {
	var target *SyntaxError
	return errors.As(err, &target)
}

func IsHTTP(err error) bool {
	var target *HTTPError
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError
func StatusCode(err error) int {
	var target *HTTPError
	if errors.As(err, &target) {
		return target.StatusCode
	}
	return 0
}
