package translator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/datascribe/datascribe-go/filter"
	"github.com/datascribe/datascribe-go/rest"
	e "github.com/datascribe/datascribe-go/rest/errors"
	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/types"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})

	_ = validate.RegisterTranslation("oneof", trans, func(ut ut.Translator) error {
		return ut.Add("Providers.oneof", "{0} must be one of: mp, aflow, oqmd", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("Providers.oneof", fe.Field())
		return t
	})
}

// QueryTranslator serves as a translator for going from operation parameters to a query string
type QueryTranslator struct {
	Route types.Route
}

// ToQuery checks the route's required parameters and flattens params into query values. Column lists are
// comma-joined and filters are serialized to a JSON encoded parameter. Nothing is sent over the network here,
// so a failed validation never reaches the service.
func (a QueryTranslator) ToQuery(params types.Params) (url.Values, error) {
	for _, name := range a.Route.Required {
		if err := checkRequired(name, params[name]); err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}

		if key == rest.ParamFilters {
			encoded, err := encodeFilters(value)
			if err != nil {
				return nil, err
			}
			if encoded != "" {
				query.Set(key, encoded)
			}
			continue
		}

		formatted, err := formatValue(value)
		if err != nil {
			return nil, e.NewTypeError(fmt.Sprintf("invalid value for parameter '%s': %v", key, err))
		}
		query.Set(key, formatted)
	}

	return query, nil
}

// ToMaterialSearch validates the query and returns the values for a single provider
func ToMaterialSearch(q m.MaterialQuery, provider string) (url.Values, error) {
	if err := validate.Struct(q); err != nil {
		return nil, e.TranslateValidatorError(err, trans)
	}

	query := url.Values{}
	setIfNotEmpty(query, "formula", q.Formula)
	setIfNotEmpty(query, "elements", strings.Join(q.Elements, ","))
	setIfNotEmpty(query, "exclude_elements", strings.Join(q.ExcludeElements, ","))
	setIfNotEmpty(query, "spacegroup", q.Spacegroup)
	setIfNotEmpty(query, "props", strings.Join(q.Props, ","))
	setIfNotEmpty(query, "temperature", q.Temperature)
	query.Set("provider", provider)
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	return query, nil
}

// ToMaterialLookup validates the lookup and returns the values for a single provider
func ToMaterialLookup(l m.MaterialLookup, provider string) (url.Values, error) {
	if err := validate.Struct(l); err != nil {
		return nil, e.TranslateValidatorError(err, trans)
	}

	query := url.Values{}
	query.Set("id", l.ID)
	query.Set("provider", provider)
	return query, nil
}

// missingParam is reported for an absent parameter as well as for an empty one
const missingParam = "Missing required parameter: %s"

func checkRequired(name string, value interface{}) error {
	if value == nil {
		return e.NewValueError(fmt.Sprintf(missingParam, name))
	}

	tag := "required"
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		tag = "required,min=1"
	}

	if err := validate.Var(value, tag); err != nil {
		return e.NewValueError(fmt.Sprintf(missingParam, name))
	}
	return nil
}

func encodeFilters(value interface{}) (string, error) {
	serialized, err := filter.Serialize(value)
	if err != nil {
		return "", err
	}
	if serialized == nil {
		return "", nil
	}
	if list, ok := serialized.([]map[string]interface{}); ok && len(list) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	// Operators such as ">" must reach the service verbatim
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(serialized); err != nil {
		return "", e.NewTypeError(fmt.Sprintf("unable to encode filters: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ","), nil
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ","), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	case map[string]interface{}:
		buf, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	default:
		return "", fmt.Errorf("unsupported type %T", value)
	}
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
