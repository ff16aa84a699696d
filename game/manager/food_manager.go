package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// specialFoodChance is the probability that a spawn cycle adds a
// special food next to the guaranteed normal one.
const specialFoodChance = 0.35

var specialKinds = [...]entity.FoodKind{
	entity.FoodBonus,
	entity.FoodSpeedUp,
	entity.FoodSpeedDown,
	entity.FoodShrink,
}

type FoodManager struct {
	boardMgr *BoardManager
	rng      *rand.Rand
	foods    []entity.Food
}

func NewFoodManager(boardMgr *BoardManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		boardMgr: boardMgr,
		rng:      rng,
		foods:    make([]entity.Food, 0),
	}
}

// SpawnCycle places one normal food and, with a fixed chance, one
// special food of a uniformly drawn kind. Each placement sees the
// occupancy left behind by the one before it.
func (fm *FoodManager) SpawnCycle(snakes []*entity.Snake, obstacles []types.Cell) {
	fm.spawnOne(entity.FoodNormal, snakes, obstacles)

	if fm.rng.Float64() < specialFoodChance {
		kind := specialKinds[fm.rng.Intn(len(specialKinds))]
		fm.spawnOne(kind, snakes, obstacles)
	}
}

func (fm *FoodManager) spawnOne(kind entity.FoodKind, snakes []*entity.Snake, obstacles []types.Cell) {
	pos := fm.boardMgr.FindFreePosition(fm.occupied(snakes, obstacles))
	fm.foods = append(fm.foods, entity.Food{Pos: pos, Kind: kind})
}

// occupied snapshots every cell a food may not land on: obstacles,
// snake bodies and the foods already on the board.
func (fm *FoodManager) occupied(snakes []*entity.Snake, obstacles []types.Cell) map[types.Cell]bool {
	occ := make(map[types.Cell]bool)
	for _, o := range obstacles {
		occ[o] = true
	}
	for _, s := range snakes {
		if s == nil {
			continue
		}
		for _, c := range s.Body {
			occ[c] = true
		}
	}
	for _, f := range fm.foods {
		occ[f.Pos] = true
	}
	return occ
}

func (fm *FoodManager) Foods() []entity.Food {
	return fm.foods
}

// At returns every food sitting on the given cell.
func (fm *FoodManager) At(pos types.Cell) []entity.Food {
	var hits []entity.Food
	for _, f := range fm.foods {
		if f.Pos == pos {
			hits = append(hits, f)
		}
	}
	return hits
}

// RemoveAt drops every food at the given cell, keeping the order of
// the rest.
func (fm *FoodManager) RemoveAt(pos types.Cell) {
	kept := fm.foods[:0]
	for _, f := range fm.foods {
		if f.Pos != pos {
			kept = append(kept, f)
		}
	}
	fm.foods = kept
}

// SetFoods replaces the food list with a restored one.
func (fm *FoodManager) SetFoods(foods []entity.Food) {
	fm.foods = foods
}

func (fm *FoodManager) Clear() {
	fm.foods = fm.foods[:0]
}
