package models

// Envelope is the outer object of every DataScribe response
type Envelope struct {
	Success *bool       `json:"success,omitempty"`
	Message string      `json:"message,omitempty"`
	Results interface{} `json:"results,omitempty"`
}

// Failed returns true when the service explicitly reported an unsuccessful request
func (e Envelope) Failed() bool {
	return e.Success != nil && !*e.Success
}
