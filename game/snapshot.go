package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Snapshot is a copy of everything a frontend needs to draw one frame.
// Slices are owned by the snapshot; renderers may keep or mutate them
// freely without touching the session.
type Snapshot struct {
	State       State
	Paused      bool
	Board       types.Board
	Theme       Theme
	Difficulty  string
	TwoPlayer   bool
	Snakes      []SnakeView
	Foods       []entity.Food
	Obstacles   []types.Cell
	Score       int // combined across snakes
	HighScore   int
	GamesPlayed int
}

// SnakeView is the drawable slice of one snake.
type SnakeView struct {
	Body  []types.Cell
	Dir   types.Direction
	Alive bool
	Score int
}
