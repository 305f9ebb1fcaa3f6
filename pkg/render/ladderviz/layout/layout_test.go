package layout

import (
	"testing"

	"github.com/yosukei/amida/pkg/ladder"
)

func testLayout() ladder.Layout {
	// 4 players, 2 levels: rung at gap 0 of level 0, gap 1 of level 1.
	return ladder.Layout{Rungs: [][]bool{
		{true, false, false},
		{false, true, false},
	}}
}

func TestBuildDimensions(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"})

	if d.FrameWidth != DefaultWidth || d.FrameHeight != DefaultHeight {
		t.Errorf("frame = %gx%g, want %gx%g", d.FrameWidth, d.FrameHeight, DefaultWidth, DefaultHeight)
	}
	if len(d.Lines) != 4 {
		t.Fatalf("len(Lines) = %d, want 4", len(d.Lines))
	}
	if len(d.Rungs) != 2 {
		t.Fatalf("len(Rungs) = %d, want 2", len(d.Rungs))
	}
	if len(d.TopLabels) != 4 || len(d.BottomTicks) != 4 {
		t.Errorf("labels = %d/%d, want 4/4", len(d.TopLabels), len(d.BottomTicks))
	}
}

func TestBuildFrameSizeOption(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"}, WithFrameSize(800, 600))
	if d.FrameWidth != 800 || d.FrameHeight != 600 {
		t.Errorf("frame = %gx%g, want 800x600", d.FrameWidth, d.FrameHeight)
	}
}

func TestBuildLineSpacing(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"})

	// Lines must be evenly spaced and ordered left to right.
	gap := d.Lines[1].X - d.Lines[0].X
	for i := 1; i < len(d.Lines); i++ {
		got := d.Lines[i].X - d.Lines[i-1].X
		if diff := got - gap; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("uneven spacing between lines %d and %d: %g vs %g", i-1, i, got, gap)
		}
	}
}

func TestBuildRungGeometry(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"})

	for _, r := range d.Rungs {
		if r.X1 != d.Lines[r.Gap].X || r.X2 != d.Lines[r.Gap+1].X {
			t.Errorf("rung at level %d gap %d spans %g..%g, lines at %g..%g",
				r.Level, r.Gap, r.X1, r.X2, d.Lines[r.Gap].X, d.Lines[r.Gap+1].X)
		}
		if r.Y <= d.Lines[0].Top || r.Y >= d.Lines[0].Bottom {
			t.Errorf("rung y = %g outside line extent (%g, %g)", r.Y, d.Lines[0].Top, d.Lines[0].Bottom)
		}
	}

	// Levels map top to bottom: the level-1 rung must sit below the level-0 rung.
	if d.Rungs[0].Y >= d.Rungs[1].Y {
		t.Errorf("level 0 rung (y=%g) not above level 1 rung (y=%g)", d.Rungs[0].Y, d.Rungs[1].Y)
	}

	// Rungs sit at the halfway mark of their level.
	rowHeight := (d.Lines[0].Bottom - d.Lines[0].Top) / 2
	wantY := d.Lines[0].Top + 0.5*rowHeight
	if diff := d.Rungs[0].Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("level 0 rung y = %g, want %g", d.Rungs[0].Y, wantY)
	}
}

func TestBuildLabels(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"})

	for i, lb := range d.TopLabels {
		if lb.X != d.Lines[i].X {
			t.Errorf("label %d at x=%g, line at x=%g", i, lb.X, d.Lines[i].X)
		}
		if lb.Y >= d.Lines[i].Top {
			t.Errorf("label %d at y=%g, not above line top %g", i, lb.Y, d.Lines[i].Top)
		}
	}

	wantTicks := []string{"1", "2", "3", "4"}
	for i, tick := range d.BottomTicks {
		if tick.Text != wantTicks[i] {
			t.Errorf("tick %d = %q, want %q", i, tick.Text, wantTicks[i])
		}
		if tick.Y <= d.Lines[i].Bottom {
			t.Errorf("tick %d at y=%g, not below line bottom %g", i, tick.Y, d.Lines[i].Bottom)
		}
	}
}

func TestTrace(t *testing.T) {
	l := testLayout()
	d := Build(l, []string{"A", "B", "C", "D"})

	// Player 0 crosses the level-0 rung to line 1, then the level-1 rung
	// at gap 1 carries it from line 1 to line 2. Final slot: 2.
	pts := d.Trace(0)
	if len(pts) == 0 {
		t.Fatal("Trace(0) returned no points")
	}
	if pts[0].X != d.Lines[0].X || pts[0].Y != d.Lines[0].Top {
		t.Errorf("trace starts at (%g, %g), want line 0 top", pts[0].X, pts[0].Y)
	}
	last := pts[len(pts)-1]
	if last.X != d.Lines[2].X || last.Y != d.Lines[2].Bottom {
		t.Errorf("trace ends at (%g, %g), want line 2 bottom", last.X, last.Y)
	}

	// The endpoint must agree with Simulate.
	mapping := ladder.Simulate(l)
	if got := mapping[0]; d.Lines[got].X != last.X {
		t.Errorf("trace endpoint disagrees with Simulate: slot %d", got)
	}
}

func TestTraceAllPlayersMatchSimulate(t *testing.T) {
	l, err := ladder.Generate(ladder.Config{Players: 6, Levels: 14, Probability: 0.45}, ladder.SeededSource(11))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	names := ladder.NormalizeNames("", 6, "P")
	d := Build(l, names)
	mapping := ladder.Simulate(l)

	for top := 0; top < 6; top++ {
		pts := d.Trace(top)
		if len(pts) == 0 {
			t.Fatalf("Trace(%d) returned no points", top)
		}
		last := pts[len(pts)-1]
		want := d.Lines[mapping[top]].X
		if last.X != want {
			t.Errorf("Trace(%d) ends at x=%g, Simulate says x=%g", top, last.X, want)
		}
	}
}

func TestTraceOutOfRange(t *testing.T) {
	d := Build(testLayout(), []string{"A", "B", "C", "D"})
	if pts := d.Trace(-1); pts != nil {
		t.Errorf("Trace(-1) = %v, want nil", pts)
	}
	if pts := d.Trace(4); pts != nil {
		t.Errorf("Trace(4) = %v, want nil", pts)
	}
}
