package types

import "testing"

func TestOppositeOf(t *testing.T) {
	cases := []struct {
		name    string
		pending Direction
		current Direction
		want    bool
	}{
		{"left opposes right", DirLeft, DirRight, true},
		{"right opposes left", DirRight, DirLeft, true},
		{"up opposes down", DirUp, DirDown, true},
		{"right does not oppose up", DirRight, DirUp, false},
		{"same direction is not opposite", DirRight, DirRight, false},
		{"nothing opposes a zero heading", DirLeft, Direction{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pending.OppositeOf(tc.current); got != tc.want {
				t.Errorf("(%v).OppositeOf(%v) = %v, want %v", tc.pending, tc.current, got, tc.want)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{9, 0},
		{10, 10},
		{155, 150},
		{310, 310},
		{1239, 1230},
	}
	for _, tc := range cases {
		if got := Align(tc.in); got != tc.want {
			t.Errorf("Align(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBoardContains(t *testing.T) {
	b := Board{Width: 200, Height: 100}
	inside := []Cell{{0, 0}, {190, 90}, {100, 50}}
	for _, c := range inside {
		if !b.Contains(c) {
			t.Errorf("expected %v inside %dx%d board", c, b.Width, b.Height)
		}
	}
	outside := []Cell{{-10, 0}, {0, -10}, {200, 0}, {0, 100}, {200, 100}}
	for _, c := range outside {
		if b.Contains(c) {
			t.Errorf("expected %v outside %dx%d board", c, b.Width, b.Height)
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 100, Y: 50}
	if got := c.Add(DirRight); got != (Cell{X: 110, Y: 50}) {
		t.Errorf("Add(DirRight) = %v", got)
	}
	if got := c.Add(DirUp); got != (Cell{X: 100, Y: 40}) {
		t.Errorf("Add(DirUp) = %v", got)
	}
}
