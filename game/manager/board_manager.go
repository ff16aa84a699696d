package manager

import (
	"log"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// maxPlacementAttempts bounds every rejection-sampling search over the
// board. Searches that run out of attempts fall back instead of failing.
const maxPlacementAttempts = 5000

// FallbackCell is used when a free-position search exhausts its budget.
// It may overlap something; the game keeps going regardless.
var FallbackCell = types.Cell{X: types.GridUnit, Y: types.GridUnit}

type BoardManager struct {
	board types.Board
	rng   *rand.Rand
}

func NewBoardManager(board types.Board, rng *rand.Rand) *BoardManager {
	return &BoardManager{
		board: board,
		rng:   rng,
	}
}

// RandomAlignedCell picks a uniformly random grid-aligned cell strictly
// inside the board.
func (bm *BoardManager) RandomAlignedCell() types.Cell {
	return types.Cell{
		X: bm.rng.Intn(bm.board.Width/types.GridUnit) * types.GridUnit,
		Y: bm.rng.Intn(bm.board.Height/types.GridUnit) * types.GridUnit,
	}
}

// FindFreePosition searches for a cell outside the occupied set.
func (bm *BoardManager) FindFreePosition(occupied map[types.Cell]bool) types.Cell {
	for i := 0; i < maxPlacementAttempts; i++ {
		pos := bm.RandomAlignedCell()
		if !occupied[pos] {
			return pos
		}
	}
	log.Printf("board: no free cell after %d attempts, using fallback", maxPlacementAttempts)
	return FallbackCell
}

// CreateObstacles places up to count distinct obstacles outside the
// excluded set. The attempt budget covers the whole batch, so a crowded
// board can yield fewer obstacles than asked for.
func (bm *BoardManager) CreateObstacles(count int, excluded map[types.Cell]bool) []types.Cell {
	obstacles := make([]types.Cell, 0, count)
	taken := make(map[types.Cell]bool, count)
	attempts := 0
	for len(obstacles) < count && attempts < maxPlacementAttempts {
		attempts++
		pos := bm.RandomAlignedCell()
		if excluded[pos] || taken[pos] {
			continue
		}
		taken[pos] = true
		obstacles = append(obstacles, pos)
	}
	if len(obstacles) < count {
		log.Printf("board: placed %d of %d obstacles before the attempt budget ran out", len(obstacles), count)
	}
	return obstacles
}
