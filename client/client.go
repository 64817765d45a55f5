package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/datascribe/datascribe-go/auth"
	"github.com/datascribe/datascribe-go/config"
	"github.com/datascribe/datascribe-go/log"
	"github.com/datascribe/datascribe-go/rest"
	e "github.com/datascribe/datascribe-go/rest/errors"
	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/rest/translator"
	"github.com/datascribe/datascribe-go/types"
)

// OpClose is listed among the operations of a client next to the routes
const OpClose = "close"

// ErrClientClosed is returned by calls made after Close
var ErrClientClosed = errors.New("client is closed")

// Client issues DataScribe operations against a single endpoint. Calls are independent of each other and
// may run concurrently; the client only holds read-only configuration and its session.
type Client struct {
	apiKey     string
	baseURL    string
	authHeader string
	authScheme string
	session    *retryablehttp.Client
	logger     log.Logger
	closed     *atomic.Bool
}

// New builds a client from cfg. The API key falls back to DATASCRIBE_API_TOKEN when cfg carries none.
func New(cfg config.Config) (*Client, error) {
	apiKey := auth.ResolveAPIKey(cfg.APIKey(), auth.EnvAPIToken)
	if apiKey == "" {
		return nil, e.NewValueError(fmt.Sprintf(
			"API key is required. Pass it explicitly or set the %s environment variable.", auth.EnvAPIToken))
	}

	baseURL := strings.TrimRight(cfg.BaseURL(), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, e.NewValueError(fmt.Sprintf("invalid base URL '%s': %v", baseURL, err))
	}

	authHeader, authScheme := cfg.AuthHeader()
	logger := cfg.Logger()
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		authHeader: authHeader,
		authScheme: authScheme,
		session:    NewSession(cfg),
		logger:     logger,
		closed:     atomic.NewBool(false),
	}, nil
}

// WithClient builds a client, runs fn with it and closes the client afterwards, even when fn panics
func WithClient(cfg config.Config, fn func(c *Client) error) (err error) {
	c, err := New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(c)
}

// Close releases the idle connections of the session. It is safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CAS(false, true) {
		return nil
	}
	c.session.HTTPClient.CloseIdleConnections()
	return nil
}

func (c *Client) IsClosed() bool {
	return c.closed.Load()
}

// Operations returns the sorted names of every operation the client answers to
func (c *Client) Operations() []string {
	names := append(rest.Names(), rest.OpGetMaterialByID, rest.OpSearchMaterials, OpClose)
	sort.Strings(names)
	return names
}

// Invoke runs the operation registered under name. Route operations return a pointer to the route's record
// type, e.g. *models.DataTableRows for get_data_table_rows.
func (c *Client) Invoke(ctx context.Context, name string, params types.Params) (interface{}, error) {
	if c.IsClosed() {
		return nil, ErrClientClosed
	}

	route, ok := rest.Lookup(name)
	if !ok {
		if handler, found := materialHandlers[name]; found {
			return handler(ctx, c, params)
		}
		return nil, e.NewAttributeError(name)
	}

	query, err := translator.QueryTranslator{Route: route}.ToQuery(params)
	if err != nil {
		return nil, err
	}

	doc, err := c.get(ctx, route.Path, query)
	if err != nil {
		return nil, err
	}

	target := route.New()
	if err := decodeShape(results(doc), route.Shape, target); err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s response", route.Name)
	}
	return target, nil
}

// get performs a GET on path and returns the decoded response once its envelope has been checked
func (c *Client) get(ctx context.Context, path string, query url.Values) (interface{}, error) {
	if c.IsClosed() {
		return nil, ErrClientClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := retryablehttp.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to build request for %s", path)
	}
	req = req.WithContext(ctx)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	apiKey := auth.ContextAPIKey(ctx)
	if apiKey == "" {
		apiKey = c.apiKey
	}
	auth.Apply(req.Request, c.authHeader, c.authScheme, apiKey)

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s failed", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read response of %s", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("request rejected", "path", path, "status", resp.StatusCode)
		return nil, e.NewHTTPError(resp.StatusCode, errorMessage(body), log.RedactURL(req.URL))
	}

	return decodeBody(body)
}

// decodeBody decodes a JSON body, failing when its envelope reports an unsuccessful request
func decodeBody(body []byte) (interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "invalid JSON response")
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return doc, nil
	}

	env := envelopeOf(obj)
	if env.Failed() {
		return nil, e.NewValueError("API request failed: " + env.Message)
	}
	return obj, nil
}

// results returns the "results" member of an envelope, or doc itself when there is none
func results(doc interface{}) interface{} {
	if obj, ok := doc.(map[string]interface{}); ok {
		if inner, found := obj["results"]; found {
			return inner
		}
	}
	return doc
}

func envelopeOf(obj map[string]interface{}) m.Envelope {
	env := m.Envelope{Results: obj["results"]}
	if success, ok := obj["success"]; ok {
		truthy := isTruthy(success)
		env.Success = &truthy
	}
	if message, ok := obj["message"]; ok && message != nil {
		env.Message = fmt.Sprint(message)
	}
	return env
}

func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	}
	return true
}

// errorMessage extracts the server's explanation from an error body
func errorMessage(body []byte) string {
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			if value, ok := obj[key]; ok && value != nil {
				if text, ok := value.(string); ok {
					return text
				}
				encoded, _ := json.Marshal(value)
				return string(encoded)
			}
		}
	}
	return strings.TrimSpace(string(body))
}

// decodeShape decodes payload into target according to the route's shape. A list route given a single
// object yields a one element list; a scalar route given a one element list yields that element.
func decodeShape(payload interface{}, shape types.Shape, target interface{}) error {
	switch shape {
	case types.List:
		switch v := payload.(type) {
		case nil:
			payload = []interface{}{}
		case map[string]interface{}:
			payload = []interface{}{v}
		}
	case types.Scalar:
		if list, ok := payload.([]interface{}); ok {
			if len(list) != 1 {
				return fmt.Errorf("expected a single record, got %d", len(list))
			}
			payload = list[0]
		}
	}
	return decode(payload, target)
}

func decode(input interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(jsonNumberHook),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// jsonNumberHook turns json.Number values into native numbers unless the target is the json.Number type
// itself, so numbers stored in untyped columns render as numbers
func jsonNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	num, ok := data.(json.Number)
	if !ok || to == reflect.TypeOf(json.Number("")) {
		return data, nil
	}
	if i, err := num.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
		return u, nil
	}
	return num.Float64()
}
