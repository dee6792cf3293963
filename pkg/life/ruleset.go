package life

import (
	"fmt"
	"strings"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleSet holds the survival and birth neighbor counts of a Life-like rule.
// Each set is a bitmask over the counts 0..8. The zero value never keeps or
// creates a live cell.
type RuleSet struct {
	survival uint16
	birth    uint16
}

// DefaultRuleSet returns classic Life, S23/B3.
func DefaultRuleSet() RuleSet {
	return RuleSet{survival: 1<<2 | 1<<3, birth: 1 << 3}
}

// NewRuleSet builds a rule from survival and birth counts. Duplicates are
// ignored; counts outside [0,8] are rejected.
func NewRuleSet(survival, birth []int) (RuleSet, error) {
	s, err := countMask(survival)
	if err != nil {
		return RuleSet{}, fmt.Errorf("survival: %w", err)
	}
	b, err := countMask(birth)
	if err != nil {
		return RuleSet{}, fmt.Errorf("birth: %w", err)
	}
	return RuleSet{survival: s, birth: b}, nil
}

// MustRuleSet is like NewRuleSet but panics on invalid counts.
func MustRuleSet(survival, birth []int) RuleSet {
	r, err := NewRuleSet(survival, birth)
	if err != nil {
		panic(err)
	}
	return r
}

func countMask(counts []int) (uint16, error) {
	var mask uint16
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, fmt.Errorf("%w: neighbor count %d", ErrInvalidRule, n)
		}
		mask |= 1 << n
	}
	return mask, nil
}

// ParseRuleSet parses "23/3" (survival/birth digits, the life file form) as
// well as the "S23/B3" and "B3/S23" notations.
func ParseRuleSet(s string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RuleSet{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	survival, birth := parts[0], parts[1]
	hasS := strings.HasPrefix(strings.ToUpper(survival), "S")
	hasB := strings.HasPrefix(strings.ToUpper(birth), "B")
	if strings.HasPrefix(strings.ToUpper(survival), "B") && strings.HasPrefix(strings.ToUpper(birth), "S") {
		survival, birth = birth, survival
		hasS, hasB = true, true
	}
	if hasS != hasB {
		return RuleSet{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	if hasS {
		survival, birth = survival[1:], birth[1:]
	}
	sc, err := parseDigits(survival)
	if err != nil {
		return RuleSet{}, fmt.Errorf("%w: %q", err, s)
	}
	bc, err := parseDigits(birth)
	if err != nil {
		return RuleSet{}, fmt.Errorf("%w: %q", err, s)
	}
	return NewRuleSet(sc, bc)
}

func parseDigits(s string) ([]int, error) {
	counts := make([]int, 0, len(s))
	for _, c := range s {
		if c < '0' || c > '8' {
			return nil, ErrInvalidRule
		}
		counts = append(counts, int(c-'0'))
	}
	return counts, nil
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r RuleSet) Survives(n int) bool { return n >= 0 && n <= MaxNeighbors && r.survival&(1<<n) != 0 }

// Born reports whether a dead cell with n live neighbors comes alive.
func (r RuleSet) Born(n int) bool { return n >= 0 && n <= MaxNeighbors && r.birth&(1<<n) != 0 }

// Next applies the rule to one cell.
func (r RuleSet) Next(alive bool, n int) bool {
	if alive {
		return r.Survives(n)
	}
	return r.Born(n)
}

// Survival returns the survival counts in ascending order.
func (r RuleSet) Survival() []int { return maskCounts(r.survival) }

// Birth returns the birth counts in ascending order.
func (r RuleSet) Birth() []int { return maskCounts(r.birth) }

func maskCounts(mask uint16) []int {
	var counts []int
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

// Digits returns the survival and birth counts as digit strings, e.g. "23" and "3".
func (r RuleSet) Digits() (survival, birth string) {
	return maskDigits(r.survival), maskDigits(r.birth)
}

func maskDigits(mask uint16) string {
	var b strings.Builder
	for _, n := range maskCounts(mask) {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// String formats the rule as "S23/B3".
func (r RuleSet) String() string {
	s, b := r.Digits()
	return "S" + s + "/B" + b
}
