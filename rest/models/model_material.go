package models

// MaterialResult is one material record returned by a provider
type MaterialResult struct {
	Provider string                 `json:"provider" mapstructure:"provider"`
	ID       string                 `json:"id,omitempty" mapstructure:"id"`
	Formula  string                 `json:"formula,omitempty" mapstructure:"formula"`
	Data     map[string]interface{} `json:"data,omitempty" mapstructure:"data"`
}

// MaterialSearchResults is a page of materials from one or more providers
type MaterialSearchResults struct {
	Results []MaterialResult `json:"results" mapstructure:"results"`
	Total   int              `json:"total" mapstructure:"total"`
}

// MaterialByIDResults holds the matches of an id lookup
type MaterialByIDResults = MaterialSearchResults

func (m MaterialSearchResults) Len() int      { return len(m.Results) }
func (m MaterialSearchResults) IsEmpty() bool { return len(m.Results) == 0 }

// Merge concatenates other after m and sums the totals
func (m MaterialSearchResults) Merge(other MaterialSearchResults) MaterialSearchResults {
	results := make([]MaterialResult, 0, len(m.Results)+len(other.Results))
	results = append(results, m.Results...)
	results = append(results, other.Results...)
	return MaterialSearchResults{Results: results, Total: m.Total + other.Total}
}
