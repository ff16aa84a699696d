package manager

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Outcome reports what one resolution pass did.
type Outcome struct {
	Deaths int
	Eaten  []entity.FoodKind
}

type CollisionManager struct {
	board     types.Board
	foodMgr   *FoodManager
	effectMgr *EffectManager
}

func NewCollisionManager(board types.Board, foodMgr *FoodManager, effectMgr *EffectManager) *CollisionManager {
	return &CollisionManager{
		board:     board,
		foodMgr:   foodMgr,
		effectMgr: effectMgr,
	}
}

// Resolve runs one resolution pass after all living snakes advanced.
// Every verdict is judged against the same post-advance snapshot before
// any aliveness flag changes, so two heads landing on each other kill
// both snakes. Per snake the checks run in order: bounds, obstacle,
// self, other snakes, then food.
func (cm *CollisionManager) Resolve(snakes []*entity.Snake, obstacles []types.Cell, now time.Time) Outcome {
	var out Outcome

	obs := make(map[types.Cell]bool, len(obstacles))
	for _, o := range obstacles {
		obs[o] = true
	}

	// Aliveness snapshot taken before any verdict lands.
	alive := make([]bool, len(snakes))
	for i, s := range snakes {
		alive[i] = s != nil && s.Alive
	}

	dead := make([]bool, len(snakes))
	for i, s := range snakes {
		if !alive[i] {
			continue
		}
		head := s.Head()
		switch {
		case !cm.board.Contains(head):
			dead[i] = true
		case obs[head]:
			dead[i] = true
		case cm.hitsSelf(s):
			dead[i] = true
		case cm.hitsOther(i, snakes, alive):
			dead[i] = true
		}
	}
	for i, s := range snakes {
		if dead[i] {
			s.Alive = false
			out.Deaths++
		}
	}

	// Food is scanned for every snake that took part in the pass, in
	// the same order. Each snake that ate triggers its own spawn cycle.
	for i, s := range snakes {
		if !alive[i] {
			continue
		}
		head := s.Head()
		eaten := cm.foodMgr.At(head)
		if len(eaten) == 0 {
			continue
		}
		for _, f := range eaten {
			cm.applyFood(f.Kind, s, now)
			out.Eaten = append(out.Eaten, f.Kind)
		}
		cm.foodMgr.RemoveAt(head)
		cm.foodMgr.SpawnCycle(snakes, obstacles)
	}

	return out
}

// hitsSelf reports whether the head landed on the snake's own body.
func (cm *CollisionManager) hitsSelf(s *entity.Snake) bool {
	head := s.Head()
	for _, c := range s.Body[:len(s.Body)-1] {
		if c == head {
			return true
		}
	}
	return false
}

// hitsOther reports whether snake i's head landed on another living
// snake, head included.
func (cm *CollisionManager) hitsOther(i int, snakes []*entity.Snake, alive []bool) bool {
	head := snakes[i].Head()
	for j, other := range snakes {
		if j == i || !alive[j] {
			continue
		}
		for _, c := range other.Body {
			if c == head {
				return true
			}
		}
	}
	return false
}

func (cm *CollisionManager) applyFood(kind entity.FoodKind, s *entity.Snake, now time.Time) {
	switch kind {
	case entity.FoodNormal:
		s.Growth++
		s.Score++
	case entity.FoodBonus:
		s.Growth += 2
		s.Score += 5
	case entity.FoodSpeedUp, entity.FoodSpeedDown:
		s.Score += 2
		cm.effectMgr.Apply(kind, s, now)
	case entity.FoodShrink:
		s.Score += 3
		s.Shrink()
	}
}
