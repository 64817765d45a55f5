package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

func (c *cli) print(model string, result interface{}, asJSON bool) error {
	if asJSON {
		return writeJSON(c.stdout, result)
	}
	return writeYAML(c.stdout, model, result)
}

// writeJSON writes one JSON document per record of a list, or a single document for anything else.
// An empty list is written as "[]".
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	value := reflect.Indirect(reflect.ValueOf(result))
	if value.Kind() != reflect.Slice {
		return errors.Wrap(encoder.Encode(value.Interface()), "unable to encode result")
	}
	if value.Len() == 0 {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}
	for i := 0; i < value.Len(); i++ {
		if err := encoder.Encode(value.Index(i).Interface()); err != nil {
			return errors.Wrap(err, "unable to encode result")
		}
	}
	return nil
}

// writeYAML writes a record type header followed by the result as YAML
func writeYAML(w io.Writer, model string, result interface{}) error {
	value := reflect.Indirect(reflect.ValueOf(result))
	header := model
	document := value.Interface()
	if value.Kind() == reflect.Slice {
		header = fmt.Sprintf("%s (%d)", model, value.Len())
		if value.Len() == 0 {
			document = []interface{}{}
		}
	}

	out, err := yaml.Marshal(document)
	if err != nil {
		return errors.Wrap(err, "unable to encode result")
	}
	_, err = fmt.Fprintf(w, "%s\n%s", header, out)
	return err
}
