package models

// MaterialQuery describes a search over the materials providers
type MaterialQuery struct {
	Formula         string   `json:"formula,omitempty"`
	Elements        []string `json:"elements,omitempty"`
	ExcludeElements []string `json:"exclude_elements,omitempty"`
	Spacegroup      string   `json:"spacegroup,omitempty"`
	Props           []string `json:"props,omitempty"`
	Temperature     string   `json:"temperature,omitempty"`

	// Providers lists the databases to search, each one is queried separately
	Providers []string `json:"providers" validate:"required,min=1,dive,oneof=mp aflow oqmd"`

	Page int `json:"page" validate:"gte=1"`
	Size int `json:"size" validate:"gte=1,lte=1000"`
}

// MaterialLookup identifies a single material in one or more providers
type MaterialLookup struct {
	ID        string   `json:"id" validate:"required"`
	Providers []string `json:"providers" validate:"required,min=1,dive,oneof=mp aflow oqmd"`
}
