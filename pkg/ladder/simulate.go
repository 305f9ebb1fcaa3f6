package ladder

// Permutation maps a top endpoint index to the bottom endpoint index its
// path reaches: p[top] = bottom. It is a bijection over 0..len(p)-1 and a
// pure function of the layout it was derived from.
type Permutation []int

// IsBijection reports whether the permutation is a valid bijection, i.e.
// every index in 0..len(p)-1 appears exactly once as a value.
func (p Permutation) IsBijection() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Pair is one resolved player→outcome assignment.
type Pair struct {
	Player  string `json:"player"`
	Outcome string `json:"outcome"`
}

// Pairs resolves the permutation against name lists, returning one pair per
// player in top-index order. Both lists must have at least len(p) entries;
// use [NormalizeNames] to pad or truncate raw input first.
func (p Permutation) Pairs(playerNames, outcomeNames []string) []Pair {
	pairs := make([]Pair, len(p))
	for top, bottom := range p {
		pairs[top] = Pair{Player: playerNames[top], Outcome: outcomeNames[bottom]}
	}
	return pairs
}

// Simulate computes the permutation induced by a rung layout.
//
// Each vertical line starts at the top carrying its own index as a token.
// Levels are processed first to last; within a level, gaps are processed
// left to right, and a rung at gap i swaps the tokens at positions i and
// i+1. The non-adjacency invariant means swaps within one level never
// interact, but the scan still runs left to right so the semantics stay
// identical for layouts that bypassed Generate.
//
// After the walk, positions[j] holds the top index that arrived at bottom
// slot j; inverting that array yields mapping[top] = bottom, which is the
// returned Permutation. A layout with zero levels yields an empty (identity
// over zero elements) permutation.
//
// Simulate is deterministic and total: the same layout always produces the
// same permutation, and no error path exists for structurally valid layouts.
func Simulate(l Layout) Permutation {
	if len(l.Rungs) == 0 {
		return Permutation{}
	}

	players := l.Players()
	positions := make([]int, players)
	for j := range positions {
		positions[j] = j
	}

	for _, level := range l.Rungs {
		for i, rung := range level {
			if rung {
				positions[i], positions[i+1] = positions[i+1], positions[i]
			}
		}
	}

	mapping := make(Permutation, players)
	for bottom, top := range positions {
		mapping[top] = bottom
	}
	return mapping
}
