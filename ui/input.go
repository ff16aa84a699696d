package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

// keyBindings maps each key to the commands it emits. S is bound to
// both save and player 2's down intent, same as the keyboard layout
// this game has always had.
var keyBindings = []struct {
	key  int32
	cmds []game.Command
}{
	{rl.KeyUp, []game.Command{game.CmdP1Up}},
	{rl.KeyDown, []game.Command{game.CmdP1Down}},
	{rl.KeyLeft, []game.Command{game.CmdP1Left}},
	{rl.KeyRight, []game.Command{game.CmdP1Right}},
	{rl.KeyW, []game.Command{game.CmdP2Up}},
	{rl.KeyA, []game.Command{game.CmdP2Left}},
	{rl.KeyD, []game.Command{game.CmdP2Right}},
	{rl.KeyS, []game.Command{game.CmdSave, game.CmdP2Down}},
	{rl.KeyP, []game.Command{game.CmdPause}},
	{rl.KeyT, []game.Command{game.CmdTheme}},
	{rl.KeyL, []game.Command{game.CmdLoad}},
	{rl.KeyQ, []game.Command{game.CmdQuit}},
	{rl.KeyM, []game.Command{game.CmdTwoPlayer}},
	{rl.KeyEnter, []game.Command{game.CmdStart}},
	{rl.KeyOne, []game.Command{game.CmdEasy}},
	{rl.KeyTwo, []game.Command{game.CmdMedium}},
	{rl.KeyThree, []game.Command{game.CmdHard}},
}

func (f *Frontend) Poll() []game.Command {
	var cmds []game.Command
	if rl.WindowShouldClose() {
		cmds = append(cmds, game.CmdQuit)
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmds...)
		}
	}
	return cmds
}
