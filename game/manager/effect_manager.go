package manager

import (
	"time"

	"snake-arcade/game/entity"
)

// EffectDuration is how long a speed food keeps its timer armed.
const EffectDuration = 3000 * time.Millisecond

// speedDelta is the tick rate change carried by one speed food.
const speedDelta = 2

// EffectManager tracks the session-wide speed effect timers. There is
// one timer slot per kind: eating the same kind again refreshes the
// clock without arming a second timer, while the modifier itself is
// adjusted on every eat. Expiry reverses the delta once, on all snakes.
type EffectManager struct {
	active map[entity.FoodKind]time.Time
}

func NewEffectManager() *EffectManager {
	return &EffectManager{
		active: make(map[entity.FoodKind]time.Time),
	}
}

// Apply adjusts the eating snake's modifier and (re)arms the shared
// timer for the kind. Non-speed kinds are ignored.
func (em *EffectManager) Apply(kind entity.FoodKind, snake *entity.Snake, now time.Time) {
	switch kind {
	case entity.FoodSpeedUp:
		snake.SpeedEffect += speedDelta
	case entity.FoodSpeedDown:
		snake.SpeedEffect -= speedDelta
	default:
		return
	}
	em.active[kind] = now
}

// Expire reverses and clears every timer older than EffectDuration.
// The reversal applies to every snake, not just the one that ate.
func (em *EffectManager) Expire(now time.Time, snakes []*entity.Snake) {
	for kind, since := range em.active {
		if now.Sub(since) < EffectDuration {
			continue
		}
		delta := speedDelta
		if kind == entity.FoodSpeedUp {
			delta = -speedDelta
		}
		for _, s := range snakes {
			if s != nil {
				s.SpeedEffect += delta
			}
		}
		delete(em.active, kind)
	}
}

// Active reports whether the kind has an armed timer.
func (em *EffectManager) Active(kind entity.FoodKind) bool {
	_, ok := em.active[kind]
	return ok
}

func (em *EffectManager) Reset() {
	clear(em.active)
}
