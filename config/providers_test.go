package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvidersSetAndClear(t *testing.T) {
	var p Providers

	assert.Equal(t, p, Providers(0))
	assert.True(t, p.IsEmpty())
	assert.False(t, p.IsSupported(MP))

	p.Set(MP | OQMD)
	assert.True(t, p.IsSupported(MP))
	assert.True(t, p.IsSupported(OQMD))
	assert.False(t, p.IsSupported(AFLOW))

	p.Clear(MP)
	assert.False(t, p.IsSupported(MP))
	assert.True(t, p.IsSupported(OQMD))
}

func TestProvidersAdd(t *testing.T) {
	var p Providers
	assert.NoError(t, p.Add("mp", "AFLOW", " oqmd "))
	assert.True(t, p.IsSupported(MP))
	assert.True(t, p.IsSupported(AFLOW))
	assert.True(t, p.IsSupported(OQMD))

	assert.EqualError(t, p.Add("icsd"), "invalid provider: icsd")
}

func TestProvidersNames(t *testing.T) {
	p, err := ParseProviders("oqmd", "mp")
	assert.NoError(t, err)
	assert.Equal(t, []string{"mp", "oqmd"}, p.Names())
	assert.Equal(t, "mp,oqmd", p.String())
	assert.Empty(t, Providers(0).Names())
}
