package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/datascribe/datascribe-go/config"
	"github.com/datascribe/datascribe-go/rest"
	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/rest/translator"
	"github.com/datascribe/datascribe-go/types"
)

const (
	DefaultMaterialPage = 1
	DefaultMaterialSize = 50
)

type materialHandler func(ctx context.Context, c *Client, params types.Params) (interface{}, error)

// materialHandlers serve the materials operations through Invoke
var materialHandlers = map[string]materialHandler{
	rest.OpGetMaterialByID: func(ctx context.Context, c *Client, params types.Params) (interface{}, error) {
		lookup := m.MaterialLookup{
			ID:        stringParam(params, "id"),
			Providers: listParam(params, "providers", "provider"),
		}
		results, err := c.lookupMaterial(ctx, lookup)
		if err != nil {
			return nil, err
		}
		return &results, nil
	},
	rest.OpSearchMaterials: func(ctx context.Context, c *Client, params types.Params) (interface{}, error) {
		query := m.MaterialQuery{
			Formula:         stringParam(params, "formula"),
			Elements:        listParam(params, "elements"),
			ExcludeElements: listParam(params, "exclude_elements"),
			Spacegroup:      stringParam(params, "spacegroup"),
			Props:           listParam(params, "props"),
			Temperature:     stringParam(params, "temperature"),
			Providers:       listParam(params, "providers", "provider"),
			Page:            intParam(params, "page", DefaultMaterialPage),
			Size:            intParam(params, "size", DefaultMaterialSize),
		}
		results, err := c.SearchMaterials(ctx, query)
		if err != nil {
			return nil, err
		}
		return &results, nil
	},
}

// GetMaterialByID looks id up in every provider of providers and merges the matches
func (c *Client) GetMaterialByID(
	ctx context.Context,
	id string,
	providers config.Providers,
) (m.MaterialByIDResults, error) {
	return c.lookupMaterial(ctx, m.MaterialLookup{ID: id, Providers: providers.Names()})
}

// SearchMaterials runs q once per provider. Results are concatenated in provider order and the totals summed.
func (c *Client) SearchMaterials(ctx context.Context, q m.MaterialQuery) (m.MaterialSearchResults, error) {
	merged := m.MaterialSearchResults{Results: []m.MaterialResult{}}
	// validate once before any request is made
	if _, err := translator.ToMaterialSearch(q, ""); err != nil {
		return merged, err
	}

	for _, provider := range q.Providers {
		query, err := translator.ToMaterialSearch(q, provider)
		if err != nil {
			return merged, err
		}
		results, err := c.materials(ctx, rest.MaterialSearchPath, query, provider)
		if err != nil {
			return merged, err
		}
		merged = merged.Merge(results)
	}
	return merged, nil
}

func (c *Client) lookupMaterial(ctx context.Context, l m.MaterialLookup) (m.MaterialByIDResults, error) {
	merged := m.MaterialByIDResults{Results: []m.MaterialResult{}}
	if _, err := translator.ToMaterialLookup(l, ""); err != nil {
		return merged, err
	}

	for _, provider := range l.Providers {
		query, err := translator.ToMaterialLookup(l, provider)
		if err != nil {
			return merged, err
		}
		results, err := c.materials(ctx, rest.MaterialByIDPath, query, provider)
		if err != nil {
			return merged, err
		}
		merged = merged.Merge(results)
	}
	return merged, nil
}

// materials issues one provider request. The payload may be a list of records or a single record, optionally
// next to a "total" member.
func (c *Client) materials(
	ctx context.Context,
	path string,
	query url.Values,
	provider string,
) (m.MaterialSearchResults, error) {
	var found m.MaterialSearchResults
	if c.IsClosed() {
		return found, ErrClientClosed
	}

	doc, err := c.get(ctx, path, query)
	if err != nil {
		return found, err
	}

	total := -1
	if obj, ok := doc.(map[string]interface{}); ok {
		if value, hasTotal := obj["total"]; hasTotal {
			if err := decode(value, &total); err != nil {
				return found, errors.Wrapf(err, "invalid total in %s response", provider)
			}
		}
	}

	switch v := results(doc).(type) {
	case nil:
	case []interface{}:
		err = decode(v, &found.Results)
	case map[string]interface{}:
		var single m.MaterialResult
		err = decode(v, &single)
		found.Results = []m.MaterialResult{single}
	default:
		err = fmt.Errorf("unexpected payload of type %T", v)
	}
	if err != nil {
		return found, errors.Wrapf(err, "unable to decode %s response", provider)
	}

	if total < 0 {
		total = len(found.Results)
	}
	found.Total = total
	for i := range found.Results {
		if found.Results[i].Provider == "" {
			found.Results[i].Provider = provider
		}
	}
	return found, nil
}

func stringParam(params types.Params, name string) string {
	if value, ok := params[name]; ok && value != nil {
		return fmt.Sprint(value)
	}
	return ""
}

// listParam reads the first present parameter of names as a list, splitting comma separated strings
func listParam(params types.Params, names ...string) []string {
	for _, name := range names {
		switch v := params[name].(type) {
		case nil:
			continue
		case []string:
			return v
		case config.Providers:
			return v.Names()
		case string:
			var list []string
			for _, item := range strings.Split(v, ",") {
				if item = strings.TrimSpace(item); item != "" {
					list = append(list, item)
				}
			}
			return list
		case []interface{}:
			list := make([]string, len(v))
			for i, item := range v {
				list[i] = fmt.Sprint(item)
			}
			return list
		}
	}
	return nil
}

func intParam(params types.Params, name string, def int) int {
	switch v := params[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		// leave an invalid number for validation to report
		return 0
	}
	return def
}
