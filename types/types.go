// types package contains the public API types
// that are shared between the client, the route table and the CLI
package types

// Params holds the keyword parameters of a single operation call
type Params map[string]interface{}

// Shape describes how the payload of a route is unwrapped
type Shape int

const (
	// Scalar routes decode their payload into a single record
	Scalar Shape = iota
	// List routes decode their payload into an ordered sequence of records
	List
)

func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

// Route maps an operation name to its endpoint, response shape and required parameters
type Route struct {
	Name     string
	Path     string
	Shape    Shape
	Model    string
	Required []string

	// New returns a pointer to an empty decode target for the route's record type
	New func() interface{}

	// Privileged routes need an elevated API key
	Privileged bool
	Paginated  bool
	Filterable bool

	Description string
}

// IsRequired returns true when the parameter must be present before a request is sent
func (r Route) IsRequired(param string) bool {
	for _, name := range r.Required {
		if name == param {
			return true
		}
	}
	return false
}
