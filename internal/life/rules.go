package life

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxNeighbors is the size of the Moore neighbourhood.
const MaxNeighbors = 8

// Condition is an inclusive live-neighbour range.
// A condition with Min > Max is inert: it never matches and is not an error.
type Condition struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether the condition takes part in evaluation.
func (c Condition) Valid() bool {
	return c.Min <= c.Max
}

// Matches reports whether count lies inside a valid condition.
func (c Condition) Matches(count int) bool {
	return c.Valid() && count >= c.Min && count <= c.Max
}

// String formats the condition as "n" or "min-max".
func (c Condition) String() string {
	if c.Min == c.Max {
		return strconv.Itoa(c.Min)
	}
	return fmt.Sprintf("%d-%d", c.Min, c.Max)
}

// RuleSet holds OR-lists of conditions for survival and birth.
type RuleSet struct {
	Survive []Condition `yaml:"survive"`
	Birth   []Condition `yaml:"birth"`
}

// Conway returns the classic B3/S23 rule.
func Conway() RuleSet {
	return RuleSet{
		Survive: []Condition{{Min: 2, Max: 3}},
		Birth:   []Condition{{Min: 3, Max: 3}},
	}
}

// Clone returns a copy that shares no slices with r.
func (r RuleSet) Clone() RuleSet {
	return RuleSet{
		Survive: append([]Condition(nil), r.Survive...),
		Birth:   append([]Condition(nil), r.Birth...),
	}
}

// Match returns the index of the first valid condition in conds containing
// count, or -1 when none does.
func Match(conds []Condition, count int) int {
	for i, c := range conds {
		if c.Matches(count) {
			return i
		}
	}
	return -1
}

func hasValid(conds []Condition) bool {
	for _, c := range conds {
		if c.Valid() {
			return true
		}
	}
	return false
}

// Next computes a cell's next state from its live-neighbour count.
//
// A live cell survives on the first matching survive condition and ages by
// one generation; otherwise it dies keeping its stale LastUpdated. A live
// cell whose non-empty survive list holds only inert conditions is left
// unchanged; an empty survive list kills every live cell.
// A dead cell is born with LastUpdated zero on the first matching birth
// condition; otherwise it stays as it is.
func Next(cur Cell, count int, rules RuleSet) Cell {
	if cur.Alive {
		if len(rules.Survive) > 0 && !hasValid(rules.Survive) {
			return cur
		}
		if Match(rules.Survive, count) >= 0 {
			return Cell{Alive: true, LastUpdated: cur.LastUpdated + 1}
		}
		return Cell{Alive: false, LastUpdated: cur.LastUpdated}
	}
	if Match(rules.Birth, count) >= 0 {
		return Cell{Alive: true, LastUpdated: 0}
	}
	return cur
}

// String formats the rule in B/S notation, e.g. "B3/S2-3".
func (r RuleSet) String() string {
	return "B" + joinConditions(r.Birth) + "/S" + joinConditions(r.Survive)
}

func joinConditions(conds []Condition) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseRule parses B/S rule notation.
//
// Accepted forms: "B3/S23" (each digit a count), "B3/S2-3" (ranges),
// "B3,6-8/S3-4,6-8" (comma separated tokens), either half first, any case.
// Consecutive single digits are merged into ranges. A range whose low end
// exceeds its high end is kept as an inert condition.
func ParseRule(s string) (RuleSet, error) {
	var rules RuleSet
	s = strings.TrimSpace(s)
	halves := strings.Split(s, "/")
	if len(halves) != 2 {
		return rules, fmt.Errorf("rule %q: expected B.../S...", s)
	}

	var seenB, seenS bool
	for _, half := range halves {
		half = strings.TrimSpace(half)
		if half == "" {
			return rules, fmt.Errorf("rule %q: empty half", s)
		}
		conds, err := parseConditions(half[1:])
		if err != nil {
			return rules, fmt.Errorf("rule %q: %w", s, err)
		}
		switch half[0] {
		case 'B', 'b':
			if seenB {
				return rules, fmt.Errorf("rule %q: duplicate B part", s)
			}
			seenB = true
			rules.Birth = conds
		case 'S', 's':
			if seenS {
				return rules, fmt.Errorf("rule %q: duplicate S part", s)
			}
			seenS = true
			rules.Survive = conds
		default:
			return rules, fmt.Errorf("rule %q: part %q must start with B or S", s, half)
		}
	}
	return rules, nil
}

func parseConditions(body string) ([]Condition, error) {
	var out []Condition
	if body == "" {
		return out, nil
	}
	for _, tok := range strings.Split(body, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(tok, "-"); ok {
			minV, err := parseCount(lo)
			if err != nil {
				return nil, err
			}
			maxV, err := parseCount(hi)
			if err != nil {
				return nil, err
			}
			out = append(out, Condition{Min: minV, Max: maxV})
			continue
		}
		for i := 0; i < len(tok); i++ {
			n, err := parseCount(tok[i : i+1])
			if err != nil {
				return nil, err
			}
			if last := len(out) - 1; last >= 0 && out[last].Valid() && out[last].Max+1 == n && i > 0 {
				out[last].Max = n
				continue
			}
			out = append(out, Condition{Min: n, Max: n})
		}
	}
	return out, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad neighbour count %q", s)
	}
	if n < 0 || n > MaxNeighbors {
		return 0, fmt.Errorf("neighbour count %d outside 0..%d", n, MaxNeighbors)
	}
	return n, nil
}

// MustParseRule is ParseRule for package-level tables; it panics on error.
func MustParseRule(s string) RuleSet {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}
