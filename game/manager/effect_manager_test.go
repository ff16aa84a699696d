package manager

import (
	"testing"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

var effectEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestApplyAdjustsModifier(t *testing.T) {
	em := NewEffectManager()
	s := entity.NewSnake(types.Cell{X: 100, Y: 100}, types.DirRight)

	em.Apply(entity.FoodSpeedUp, s, effectEpoch)
	if s.SpeedEffect != 2 {
		t.Errorf("expected modifier +2 after speed up, got %d", s.SpeedEffect)
	}
	if !em.Active(entity.FoodSpeedUp) {
		t.Error("speed up timer should be armed")
	}

	em.Apply(entity.FoodSpeedDown, s, effectEpoch)
	if s.SpeedEffect != 0 {
		t.Errorf("expected modifiers to cancel, got %d", s.SpeedEffect)
	}
	if !em.Active(entity.FoodSpeedDown) {
		t.Error("speed down timer should be armed")
	}
}

func TestApplyIgnoresNonSpeedKinds(t *testing.T) {
	em := NewEffectManager()
	s := entity.NewSnake(types.Cell{X: 100, Y: 100}, types.DirRight)

	em.Apply(entity.FoodBonus, s, effectEpoch)
	em.Apply(entity.FoodShrink, s, effectEpoch)

	if s.SpeedEffect != 0 {
		t.Errorf("expected no modifier change, got %d", s.SpeedEffect)
	}
	if em.Active(entity.FoodBonus) || em.Active(entity.FoodShrink) {
		t.Error("non-speed kinds must not arm timers")
	}
}

func TestExpireReversesOnceAcrossAllSnakes(t *testing.T) {
	em := NewEffectManager()
	eater := entity.NewSnake(types.Cell{X: 100, Y: 100}, types.DirRight)
	bystander := entity.NewSnake(types.Cell{X: 300, Y: 100}, types.DirRight)
	snakes := []*entity.Snake{eater, bystander}

	em.Apply(entity.FoodSpeedDown, eater, effectEpoch)

	// Not yet due.
	em.Expire(effectEpoch.Add(EffectDuration-time.Millisecond), snakes)
	if eater.SpeedEffect != -2 || !em.Active(entity.FoodSpeedDown) {
		t.Fatal("effect expired early")
	}

	em.Expire(effectEpoch.Add(EffectDuration), snakes)
	if eater.SpeedEffect != 0 {
		t.Errorf("expected the eater back at 0, got %d", eater.SpeedEffect)
	}
	// The reversal hits every snake, so the bystander drifts. That skew
	// is part of the game's long-standing behavior.
	if bystander.SpeedEffect != 2 {
		t.Errorf("expected the bystander at +2, got %d", bystander.SpeedEffect)
	}
	if em.Active(entity.FoodSpeedDown) {
		t.Error("timer should be cleared after expiry")
	}
}

func TestDoubleEatLeavesResidual(t *testing.T) {
	em := NewEffectManager()
	s := entity.NewSnake(types.Cell{X: 100, Y: 100}, types.DirRight)
	snakes := []*entity.Snake{s}

	em.Apply(entity.FoodSpeedUp, s, effectEpoch)
	em.Apply(entity.FoodSpeedUp, s, effectEpoch.Add(time.Second))
	if s.SpeedEffect != 4 {
		t.Fatalf("expected stacked modifier +4, got %d", s.SpeedEffect)
	}

	// The second eat refreshed the shared timer, so three seconds after
	// the first eat nothing expires yet.
	em.Expire(effectEpoch.Add(EffectDuration), snakes)
	if s.SpeedEffect != 4 {
		t.Fatalf("timer was not refreshed, modifier %d", s.SpeedEffect)
	}

	// Expiry reverses one delta only; the residual +2 stays forever.
	em.Expire(effectEpoch.Add(time.Second+EffectDuration), snakes)
	if s.SpeedEffect != 2 {
		t.Errorf("expected residual +2 after expiry, got %d", s.SpeedEffect)
	}
}

func TestResetDropsTimers(t *testing.T) {
	em := NewEffectManager()
	s := entity.NewSnake(types.Cell{X: 100, Y: 100}, types.DirRight)

	em.Apply(entity.FoodSpeedUp, s, effectEpoch)
	em.Reset()

	if em.Active(entity.FoodSpeedUp) {
		t.Error("reset should clear armed timers")
	}

	// A cleared timer must not fire later.
	em.Expire(effectEpoch.Add(2*EffectDuration), []*entity.Snake{s})
	if s.SpeedEffect != 2 {
		t.Errorf("expected modifier untouched after reset, got %d", s.SpeedEffect)
	}
}
