package entity

import (
	"snake-arcade/game/types"
)

// InitialLength is how many cells a fresh snake grows into.
const InitialLength = 3

type Snake struct {
	Body        []types.Cell    // ordered tail first, head last
	Direction   types.Direction // committed heading
	Pending     types.Direction // intent applied on the next advance
	Growth      int             // tail cells still owed
	Alive       bool
	Score       int
	SpeedEffect int // additive tick rate modifier, positive or negative
}

func NewSnake(start types.Cell, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Cell{start},
		Direction: dir,
		Pending:   dir,
		Growth:    InitialLength - 1,
		Alive:     true,
	}
}

func (s *Snake) Head() types.Cell {
	return s.Body[len(s.Body)-1]
}

// CurrentDirection derives the heading from the last two body cells.
// Short bodies fall back to the committed direction.
func (s *Snake) CurrentDirection() types.Direction {
	if len(s.Body) < 2 {
		return s.Direction
	}
	head := s.Body[len(s.Body)-1]
	neck := s.Body[len(s.Body)-2]
	return types.Direction{DX: head.X - neck.X, DY: head.Y - neck.Y}
}

// SetIntent records the direction to commit on the next advance. A
// later intent before the tick fires overwrites an earlier one.
func (s *Snake) SetIntent(d types.Direction) {
	s.Pending = d
}

// Advance commits the pending intent and moves the snake one cell.
// A 180-degree reversal or an empty intent keeps the current heading.
// This is the only place the body geometry changes during play.
func (s *Snake) Advance() {
	current := s.CurrentDirection()
	if s.Pending.IsZero() || s.Pending.OppositeOf(current) {
		s.Direction = current
	} else {
		s.Direction = s.Pending
	}

	s.Body = append(s.Body, s.Head().Add(s.Direction))
	if s.Growth > 0 {
		s.Growth--
	} else {
		s.Body = s.Body[1:]
	}
}

// Shrink drops the older half of the body and cancels pending growth.
// Snakes of three cells or fewer are left alone.
func (s *Snake) Shrink() {
	if len(s.Body) > 3 {
		mid := len(s.Body) / 2
		s.Body = s.Body[mid-1:]
		s.Growth = 0
	}
}
