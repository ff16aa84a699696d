package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	fontSize      = 26
	titleFontSize = 44
	windowTitle   = "Snake Game - Enhanced"
)

// Frontend is the raylib window: it draws snapshots and translates key
// presses into commands.
type Frontend struct {
	board types.Board
}

func New(board types.Board) *Frontend {
	rl.InitWindow(int32(board.Width), int32(board.Height), windowTitle)
	rl.SetTargetFPS(60)
	return &Frontend{board: board}
}

func (f *Frontend) Close() {
	rl.CloseWindow()
}

func (f *Frontend) Render(snap *game.Snapshot) {
	rl.BeginDrawing()
	switch snap.State {
	case game.StateMenu:
		f.drawMenu(snap)
	default:
		f.drawPlay(snap)
	}
	rl.EndDrawing()
}

func (f *Frontend) drawPlay(snap *game.Snapshot) {
	theme := snap.Theme
	rl.ClearBackground(rgb(theme.Bg))

	cell := int32(types.GridUnit)
	for _, o := range snap.Obstacles {
		rl.DrawRectangle(int32(o.X), int32(o.Y), cell, cell, rgb(theme.Obstacle))
	}
	for _, fd := range snap.Foods {
		rl.DrawRectangle(int32(fd.Pos.X), int32(fd.Pos.Y), cell, cell, rgb(theme.FoodColor(fd.Kind)))
	}

	bodyColors := []types.Color{theme.Snake1, theme.Snake2}
	for i, sn := range snap.Snakes {
		if !sn.Alive {
			continue
		}
		color := rgb(bodyColors[i%len(bodyColors)])
		for j, p := range sn.Body {
			c := color
			if j == len(sn.Body)-1 {
				c = brighten(bodyColors[i%len(bodyColors)])
				f.drawHeading(p, sn.Dir)
			}
			rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, c)
		}
	}

	text := rgb(theme.Text)
	rl.DrawText(fmt.Sprintf("Score: %d  High: %d", snap.Score, snap.HighScore), 10, 10, fontSize, text)
	rl.DrawText(fmt.Sprintf("Difficulty: %s  Theme: %s", title(snap.Difficulty), title(snap.Theme.Name)),
		10, 40, fontSize, text)
	rl.DrawText("P: Pause  T: Theme  S: Save  L: Load  Q: Quit", 10, 70, fontSize, text)
	if snap.Paused {
		rl.DrawText("Paused", int32(f.board.Width/2-40), 10, fontSize, text)
	}
	if snap.State == game.StateGameOver {
		rl.DrawText("Game Over! Press P to play again, Q to quit, or L to load last save.",
			int32(f.board.Width/10), int32(f.board.Height/2-20), fontSize, text)
	}
}

// drawHeading marks the head with a small triangle pointing along the
// direction of travel.
func (f *Frontend) drawHeading(head types.Cell, dir types.Direction) {
	cell := int32(types.GridUnit)
	half := cell / 2
	x := int32(head.X)
	y := int32(head.Y)
	switch {
	case dir.DX > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + cell), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + cell)},
			rl.Yellow)
	case dir.DX < 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + cell)},
			rl.Yellow)
	case dir.DY > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y + cell)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + cell), Y: float32(y + half)},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + cell), Y: float32(y + half)},
			rl.Yellow)
	}
}

func (f *Frontend) drawMenu(snap *game.Snapshot) {
	rl.ClearBackground(rl.Color{R: 30, G: 30, B: 50, A: 255})
	menuText := rl.Color{R: 220, G: 220, B: 220, A: 255}

	titleWidth := rl.MeasureText(windowTitle, titleFontSize)
	rl.DrawText(windowTitle, (int32(f.board.Width)-titleWidth)/2, 40, titleFontSize, menuText)

	mode := "Single-Player"
	if snap.TwoPlayer {
		mode = "Two-Player"
	}
	rl.DrawText(fmt.Sprintf("Difficulty [1/2/3]: Easy/Medium/Hard (Current: %s)", title(snap.Difficulty)),
		60, 140, fontSize, menuText)
	rl.DrawText(fmt.Sprintf("Theme [T]: %s (Cycle)", title(snap.Theme.Name)), 60, 180, fontSize, menuText)
	rl.DrawText(fmt.Sprintf("Mode [M]: %s (Toggle)", mode), 60, 220, fontSize, menuText)
	rl.DrawText("Start [Enter]  Load Save [L]  Quit [Q]", 60, 260, fontSize, menuText)
	rl.DrawText(fmt.Sprintf("High Score: %d  Games Played: %d", snap.HighScore, snap.GamesPlayed),
		60, 320, fontSize, rl.Color{R: 160, G: 160, B: 160, A: 255})
}

func rgb(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func brighten(c types.Color) rl.Color {
	f := func(v uint8) uint8 {
		n := int(v) * 13 / 10
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return rl.Color{R: f(c.R), G: f(c.G), B: f(c.B), A: 255}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
