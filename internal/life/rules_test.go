package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInertConditionNeverMatches(t *testing.T) {
	for lo := 0; lo <= MaxNeighbors; lo++ {
		for hi := 0; hi < lo; hi++ {
			c := Condition{Min: lo, Max: hi}
			require.False(t, c.Valid())
			for n := 0; n <= MaxNeighbors; n++ {
				require.False(t, c.Matches(n), "%v matched %d", c, n)
			}
		}
	}
}

func TestMatchSkipsInert(t *testing.T) {
	conds := []Condition{{Min: 4, Max: 1}, {Min: 2, Max: 3}, {Min: 3, Max: 5}}
	assert.Equal(t, 1, Match(conds, 3))
	assert.Equal(t, 2, Match(conds, 4))
	assert.Equal(t, -1, Match(conds, 1))
	assert.Equal(t, -1, Match(nil, 0))
}

func TestNextOrderIndependent(t *testing.T) {
	a := RuleSet{
		Survive: []Condition{{Min: 2, Max: 3}, {Min: 3, Max: 6}},
		Birth:   []Condition{{Min: 3, Max: 3}, {Min: 1, Max: 4}},
	}
	b := RuleSet{
		Survive: []Condition{{Min: 3, Max: 6}, {Min: 2, Max: 3}},
		Birth:   []Condition{{Min: 1, Max: 4}, {Min: 3, Max: 3}},
	}
	cells := []Cell{{}, {LastUpdated: 4}, {Alive: true}, {Alive: true, LastUpdated: 9}}
	for _, cell := range cells {
		for n := 0; n <= MaxNeighbors; n++ {
			assert.Equal(t, Next(cell, n, a), Next(cell, n, b), "cell %+v count %d", cell, n)
		}
	}
}

func TestNext(t *testing.T) {
	rules := Conway()
	tests := []struct {
		name  string
		cell  Cell
		count int
		want  Cell
	}{
		{"survives and ages", Cell{Alive: true, LastUpdated: 4}, 2, Cell{Alive: true, LastUpdated: 5}},
		{"dies keeping recency", Cell{Alive: true, LastUpdated: 4}, 1, Cell{Alive: false, LastUpdated: 4}},
		{"overcrowded", Cell{Alive: true}, 4, Cell{}},
		{"birth resets recency", Cell{LastUpdated: 9}, 3, Cell{Alive: true, LastUpdated: 0}},
		{"stays dead", Cell{LastUpdated: 2}, 2, Cell{LastUpdated: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.cell, tt.count, rules))
		})
	}
}

func TestNextAllInertSurviveKeepsCell(t *testing.T) {
	rules := RuleSet{Survive: []Condition{{Min: 5, Max: 2}}}
	cell := Cell{Alive: true, LastUpdated: 3}
	for n := 0; n <= MaxNeighbors; n++ {
		assert.Equal(t, cell, Next(cell, n, rules))
	}

	// An empty survive list is different: nothing can match, the cell dies.
	assert.False(t, Next(cell, 2, RuleSet{}).Alive)
}

func TestInertRuleLeavesCellUnchanged(t *testing.T) {
	inert := []Condition{{Min: 5, Max: 2}}
	rules := RuleSet{Survive: inert, Birth: inert}

	alive := GridFromRows(
		"##.",
		"###",
		"...",
	)
	alive.MutateCell(1, 1, true, 6)
	require.Equal(t, 4, alive.NeighborCount(1, 1))
	alive.MutateCell(2, 0, true, 0)
	require.Equal(t, 5, alive.NeighborCount(1, 1))

	dead := alive.Clone()
	dead.MutateCell(1, 1, false, 0)
	require.Equal(t, 5, dead.NeighborCount(1, 1))

	for _, g := range []*Grid{alive, dead} {
		want := g.At(1, 1)
		for i := 0; i < 10; i++ {
			g.Replace(Step(g, rules))
			require.Equal(t, want, g.At(1, 1), "step %d", i)
		}
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		survive []Condition
		birth   []Condition
		str     string
	}{
		{"B3/S23", []Condition{{2, 3}}, []Condition{{3, 3}}, "B3/S2-3"},
		{"b36/s23", []Condition{{2, 3}}, []Condition{{3, 3}, {6, 6}}, "B3,6/S2-3"},
		{"S23/B3", []Condition{{2, 3}}, []Condition{{3, 3}}, "B3/S2-3"},
		{"B2/S", nil, []Condition{{2, 2}}, "B2/S"},
		{"B3,6-8/S3-4,6-8", []Condition{{3, 4}, {6, 8}}, []Condition{{3, 3}, {6, 8}}, "B3,6-8/S3-4,6-8"},
		{"B1357/S1357", []Condition{{1, 1}, {3, 3}, {5, 5}, {7, 7}}, []Condition{{1, 1}, {3, 3}, {5, 5}, {7, 7}}, "B1,3,5,7/S1,3,5,7"},
		{"B3/S5-2", []Condition{{5, 2}}, []Condition{{3, 3}}, "B3/S5-2"},
		{" B3 / S012345678 ", []Condition{{0, 8}}, []Condition{{3, 3}}, "B3/S0-8"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRule(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.survive, r.Survive)
			assert.Equal(t, tt.birth, r.Birth)
			assert.Equal(t, tt.str, r.String())

			again, err := ParseRule(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, again)
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S23/X", "X3/S23", "B3/B3", "B9/S2", "B3/S2-x", "/S23"} {
		_, err := ParseRule(in)
		assert.Error(t, err, in)
	}
}

func TestMustParseRulePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseRule("nope") })
	assert.Equal(t, Conway(), MustParseRule("B3/S23"))
}

func TestCloneRuleSet(t *testing.T) {
	r := Conway()
	c := r.Clone()
	c.Survive[0].Max = 8
	assert.Equal(t, 3, r.Survive[0].Max)
}
