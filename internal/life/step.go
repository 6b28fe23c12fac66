package life

// Step builds the next generation of g under rules.
// Neighbour counts are always taken from g; the result is a separate grid
// meant to be published with Grid.Replace.
func Step(g *Grid, rules RuleSet) *Grid {
	h, w := g.Height(), g.Width()
	next := &Grid{rows: make([][]Cell, h)}
	for r := 0; r < h; r++ {
		row := make([]Cell, w)
		for c := 0; c < w; c++ {
			row[c] = Next(g.rows[r][c], g.NeighborCount(r, c), rules)
		}
		next.rows[r] = row
	}
	return next
}
