package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestRandomAlignedCellStaysOnGrid(t *testing.T) {
	bm := NewBoardManager(types.Board{Width: 200, Height: 100}, testRNG(1))

	for i := 0; i < 500; i++ {
		c := bm.RandomAlignedCell()
		if c.X%types.GridUnit != 0 || c.Y%types.GridUnit != 0 {
			t.Fatalf("cell %v is not grid aligned", c)
		}
		if c.X < 0 || c.X >= 200 || c.Y < 0 || c.Y >= 100 {
			t.Fatalf("cell %v is outside the board", c)
		}
	}
}

func TestFindFreePositionAvoidsOccupied(t *testing.T) {
	// Sixteen cells with a single one left free.
	board := types.Board{Width: 40, Height: 40}
	bm := NewBoardManager(board, testRNG(2))

	occupied := make(map[types.Cell]bool)
	for x := 0; x < board.Width; x += types.GridUnit {
		for y := 0; y < board.Height; y += types.GridUnit {
			occupied[types.Cell{X: x, Y: y}] = true
		}
	}
	free := types.Cell{X: 30, Y: 30}
	delete(occupied, free)

	if got := bm.FindFreePosition(occupied); got != free {
		t.Errorf("FindFreePosition = %v, want %v", got, free)
	}
}

func TestFindFreePositionFallsBackWhenFull(t *testing.T) {
	board := types.Board{Width: 20, Height: 20}
	bm := NewBoardManager(board, testRNG(3))

	occupied := make(map[types.Cell]bool)
	for x := 0; x < board.Width; x += types.GridUnit {
		for y := 0; y < board.Height; y += types.GridUnit {
			occupied[types.Cell{X: x, Y: y}] = true
		}
	}

	if got := bm.FindFreePosition(occupied); got != FallbackCell {
		t.Errorf("FindFreePosition on a full board = %v, want fallback %v", got, FallbackCell)
	}
}

func TestCreateObstacles(t *testing.T) {
	board := types.Board{Width: 200, Height: 200}
	bm := NewBoardManager(board, testRNG(4))

	home := types.Cell{X: 50, Y: 100}
	obstacles := bm.CreateObstacles(15, map[types.Cell]bool{home: true})

	if len(obstacles) != 15 {
		t.Fatalf("expected 15 obstacles, got %d", len(obstacles))
	}
	seen := make(map[types.Cell]bool)
	for _, o := range obstacles {
		if o == home {
			t.Errorf("obstacle placed on the excluded cell %v", o)
		}
		if seen[o] {
			t.Errorf("duplicate obstacle at %v", o)
		}
		seen[o] = true
	}
}

func TestCreateObstaclesAcceptsShortfall(t *testing.T) {
	// Four cells cannot hold ten obstacles; the shortfall is accepted.
	board := types.Board{Width: 20, Height: 20}
	bm := NewBoardManager(board, testRNG(5))

	obstacles := bm.CreateObstacles(10, nil)

	if len(obstacles) != 4 {
		t.Errorf("expected the whole board filled (4 obstacles), got %d", len(obstacles))
	}
}
