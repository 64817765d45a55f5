package config

import (
	"fmt"
	"strings"
)

// Providers is a set of materials databases
type Providers int

const (
	MP Providers = 1 << iota
	AFLOW
	OQMD
)

var providerNames = []struct {
	provider Providers
	name     string
}{
	{MP, "mp"},
	{AFLOW, "aflow"},
	{OQMD, "oqmd"},
}

func ParseProviders(names ...string) (Providers, error) {
	var p Providers
	err := p.Add(names...)
	return p, err
}

func (p *Providers) Set(providers Providers)             { *p |= providers }
func (p *Providers) Clear(providers Providers)           { *p &= ^providers }
func (p Providers) IsSupported(providers Providers) bool { return p&providers != 0 }
func (p Providers) IsEmpty() bool                        { return p == 0 }

func (p *Providers) Add(names ...string) error {
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "mp":
			p.Set(MP)
		case "aflow":
			p.Set(AFLOW)
		case "oqmd":
			p.Set(OQMD)
		default:
			return fmt.Errorf("invalid provider: %s", name)
		}
	}
	return nil
}

// Names returns the provider names in canonical order
func (p Providers) Names() []string {
	names := make([]string, 0, len(providerNames))
	for _, entry := range providerNames {
		if p.IsSupported(entry.provider) {
			names = append(names, entry.name)
		}
	}
	return names
}

func (p Providers) String() string {
	return strings.Join(p.Names(), ",")
}
