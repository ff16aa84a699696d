package tui

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS

// Frontend renders the game into a terminal, one character per grid
// cell. Cells that fall outside the terminal are clipped by tcell.
type Frontend struct {
	screen tcell.Screen
	board  types.Board
	events chan tcell.Event
	ticker *time.Ticker
}

func New(board types.Board) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.HideCursor()

	f := &Frontend{
		screen: screen,
		board:  board,
		events: make(chan tcell.Event, 64),
		ticker: time.NewTicker(frameInterval),
	}
	// PollEvent returns nil once the screen is finalized, which ends
	// the goroutine.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case f.events <- ev:
			default:
			}
		}
	}()
	return f, nil
}

func (f *Frontend) Close() {
	f.ticker.Stop()
	f.screen.Fini()
}

// Poll drains buffered terminal events without blocking.
func (f *Frontend) Poll() []game.Command {
	var cmds []game.Command
	for {
		select {
		case ev := <-f.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmds = append(cmds, translateKey(ev)...)
			case *tcell.EventResize:
				f.screen.Sync()
			}
		default:
			return cmds
		}
	}
}

func translateKey(ev *tcell.EventKey) []game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return []game.Command{game.CmdP1Up}
	case tcell.KeyDown:
		return []game.Command{game.CmdP1Down}
	case tcell.KeyLeft:
		return []game.Command{game.CmdP1Left}
	case tcell.KeyRight:
		return []game.Command{game.CmdP1Right}
	case tcell.KeyEnter:
		return []game.Command{game.CmdStart}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []game.Command{game.CmdQuit}
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return []game.Command{game.CmdP2Up}
		case 'a':
			return []game.Command{game.CmdP2Left}
		case 'd':
			return []game.Command{game.CmdP2Right}
		case 's':
			// Same double duty as the windowed frontend.
			return []game.Command{game.CmdSave, game.CmdP2Down}
		case 'p':
			return []game.Command{game.CmdPause}
		case 't':
			return []game.Command{game.CmdTheme}
		case 'l':
			return []game.Command{game.CmdLoad}
		case 'q':
			return []game.Command{game.CmdQuit}
		case 'm':
			return []game.Command{game.CmdTwoPlayer}
		case '1':
			return []game.Command{game.CmdEasy}
		case '2':
			return []game.Command{game.CmdMedium}
		case '3':
			return []game.Command{game.CmdHard}
		}
	}
	return nil
}

// Render waits for the next frame slot, then draws the snapshot.
func (f *Frontend) Render(snap *game.Snapshot) {
	<-f.ticker.C
	f.screen.Clear()
	switch snap.State {
	case game.StateMenu:
		f.drawMenu(snap)
	default:
		f.drawPlay(snap)
	}
	f.screen.Show()
}

func (f *Frontend) drawPlay(snap *game.Snapshot) {
	theme := snap.Theme
	cols := f.board.Width / types.GridUnit
	rows := f.board.Height / types.GridUnit

	bg := tcell.StyleDefault.Background(color(theme.Bg))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			f.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, o := range snap.Obstacles {
		f.setCell(o, '▒', bg.Foreground(color(theme.Obstacle)))
	}
	for _, fd := range snap.Foods {
		f.setCell(fd.Pos, '●', bg.Foreground(color(theme.FoodColor(fd.Kind))))
	}

	bodyColors := []types.Color{theme.Snake1, theme.Snake2}
	for i, sn := range snap.Snakes {
		if !sn.Alive {
			continue
		}
		style := bg.Foreground(color(bodyColors[i%len(bodyColors)]))
		for j, p := range sn.Body {
			r := '█'
			if j == len(sn.Body)-1 {
				r = headRune(sn.Dir)
			}
			f.setCell(p, r, style)
		}
	}

	text := bg.Foreground(color(theme.Text))
	f.drawString(1, 0, fmt.Sprintf("Score: %d  High: %d", snap.Score, snap.HighScore), text)
	f.drawString(1, 1, fmt.Sprintf("Difficulty: %s  Theme: %s", snap.Difficulty, snap.Theme.Name), text)
	f.drawString(1, 2, "P: Pause  T: Theme  S: Save  L: Load  Q: Quit", text)
	if snap.Paused {
		f.drawString(cols/2-3, 0, "Paused", text)
	}
	if snap.State == game.StateGameOver {
		f.drawString(cols/10, rows/2, "Game Over! Press P to play again, Q to quit, or L to load last save.", text)
	}
}

func (f *Frontend) drawMenu(snap *game.Snapshot) {
	width, height := f.screen.Size()
	bg := tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 50))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	text := bg.Foreground(tcell.NewRGBColor(220, 220, 220))
	dim := bg.Foreground(tcell.NewRGBColor(160, 160, 160))

	title := "Snake Game - Enhanced"
	f.drawString((width-len(title))/2, 2, title, text.Bold(true))

	mode := "Single-Player"
	if snap.TwoPlayer {
		mode = "Two-Player"
	}
	f.drawString(4, 6, fmt.Sprintf("Difficulty [1/2/3]: Easy/Medium/Hard (Current: %s)", snap.Difficulty), text)
	f.drawString(4, 8, fmt.Sprintf("Theme [T]: %s (Cycle)", snap.Theme.Name), text)
	f.drawString(4, 10, fmt.Sprintf("Mode [M]: %s (Toggle)", mode), text)
	f.drawString(4, 12, "Start [Enter]  Load Save [L]  Quit [Q]", text)
	f.drawString(4, 15, fmt.Sprintf("High Score: %d  Games Played: %d", snap.HighScore, snap.GamesPlayed), dim)
}

func (f *Frontend) setCell(c types.Cell, r rune, style tcell.Style) {
	f.screen.SetContent(c.X/types.GridUnit, c.Y/types.GridUnit, r, nil, style)
}

func (f *Frontend) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func headRune(dir types.Direction) rune {
	switch {
	case dir.DX > 0:
		return '>'
	case dir.DX < 0:
		return '<'
	case dir.DY > 0:
		return 'v'
	default:
		return '^'
	}
}

func color(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
