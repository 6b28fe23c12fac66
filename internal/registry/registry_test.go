package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestListSorted(t *testing.T) {
	all := List()
	require.GreaterOrEqual(t, len(all), 11)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestGet(t *testing.T) {
	p, err := Get("conway")
	require.NoError(t, err)
	assert.Equal(t, life.Conway(), p.Rules)
	assert.Equal(t, "B3/S2-3", p.Notation())

	p, err = Get("seeds")
	require.NoError(t, err)
	assert.Empty(t, p.Rules.Survive)

	_, err = Get("nope")
	assert.Error(t, err)
	assert.False(t, Exists("nope"))
	assert.True(t, Exists("highlife"))
}

func TestGetReturnsCopy(t *testing.T) {
	p, err := Get("conway")
	require.NoError(t, err)
	p.Rules.Birth[0].Min = 0

	again, err := Get("conway")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Rules.Birth[0].Min)
}

func TestRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { Register("conway", "dup", "B3/S23") })
	assert.Panics(t, func() { Register("broken", "Broken", "B9/S23") })
	assert.False(t, Exists("broken"))
}

func TestNextWraps(t *testing.T) {
	all := List()
	assert.Equal(t, all[1].ID, Next(all[0].ID).ID)
	assert.Equal(t, all[0].ID, Next(all[len(all)-1].ID).ID)
	assert.Equal(t, all[0].ID, Next("unknown").ID)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(life.MustParseRule("B36/S23"))
	require.True(t, ok)
	assert.Equal(t, "highlife", p.ID)

	_, ok = Lookup(life.MustParseRule("B0/S0"))
	assert.False(t, ok)
}
