package ladder

import (
	"slices"
	"testing"
)

func TestSimulate(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   Permutation
	}{
		{
			name:   "zero levels is identity",
			layout: Layout{},
			want:   Permutation{},
		},
		{
			name:   "two players, one rung",
			layout: Layout{Rungs: [][]bool{{true}}},
			want:   Permutation{1, 0},
		},
		{
			name:   "three players, no rungs",
			layout: Layout{Rungs: [][]bool{{false, false}}},
			want:   Permutation{0, 1, 2},
		},
		{
			name: "four players, two levels",
			// Level 0 swaps gap 0: [1 0 2 3]; level 1 swaps gap 1: [1 2 0 3].
			// Inverting: token 0 lands at slot 2, token 1 at 0, token 2 at 1.
			layout: Layout{Rungs: [][]bool{
				{true, false, false},
				{false, true, false},
			}},
			want: Permutation{2, 0, 1, 3},
		},
		{
			name: "non-adjacent rungs in one level",
			layout: Layout{Rungs: [][]bool{
				{true, false, true, false},
			}},
			want: Permutation{1, 0, 3, 2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simulate(tt.layout)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Simulate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	l, err := Generate(Config{Players: 8, Levels: 20, Probability: 0.4}, SeededSource(99))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	first := Simulate(l)
	for i := 0; i < 5; i++ {
		if got := Simulate(l); !slices.Equal(got, first) {
			t.Fatalf("Simulate() run %d = %v, want %v", i, got, first)
		}
	}
}

func TestSimulateAlwaysBijection(t *testing.T) {
	for seed := uint64(0); seed < 25; seed++ {
		cfg := Config{
			Players:     2 + int(seed%7),
			Levels:      1 + int(seed%13),
			Probability: float64(seed%11) / 10,
		}
		l, err := Generate(cfg, SeededSource(seed))
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}

		p := Simulate(l)
		if len(p) != cfg.Players {
			t.Fatalf("seed %d: len = %d, want %d", seed, len(p), cfg.Players)
		}
		if !p.IsBijection() {
			t.Fatalf("seed %d: Simulate() = %v is not a bijection", seed, p)
		}
	}
}

func TestPermutationIsBijection(t *testing.T) {
	tests := []struct {
		name string
		p    Permutation
		want bool
	}{
		{name: "identity", p: Permutation{0, 1, 2}, want: true},
		{name: "reversal", p: Permutation{2, 1, 0}, want: true},
		{name: "empty", p: Permutation{}, want: true},
		{name: "duplicate value", p: Permutation{0, 0, 2}, want: false},
		{name: "out of range", p: Permutation{0, 3, 1}, want: false},
		{name: "negative", p: Permutation{0, -1, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsBijection(); got != tt.want {
				t.Errorf("IsBijection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPermutationPairs(t *testing.T) {
	p := Permutation{2, 0, 1, 3}
	players := []string{"A", "B", "C", "D"}
	outcomes := []string{"Prize 1", "Prize 2", "Prize 3", "Prize 4"}

	pairs := p.Pairs(players, outcomes)
	want := []Pair{
		{Player: "A", Outcome: "Prize 3"},
		{Player: "B", Outcome: "Prize 1"},
		{Player: "C", Outcome: "Prize 2"},
		{Player: "D", Outcome: "Prize 4"},
	}

	if len(pairs) != len(want) {
		t.Fatalf("Pairs() len = %d, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Pairs()[%d] = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}
