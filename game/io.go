package game

// Command is one discrete input consumed by the session. Frontends
// translate raw key events into commands and the session interprets
// them according to its current state.
type Command int

const (
	CmdNone Command = iota

	// Player one steering
	CmdP1Up
	CmdP1Down
	CmdP1Left
	CmdP1Right

	// Player two steering, ignored in single player mode
	CmdP2Up
	CmdP2Down
	CmdP2Left
	CmdP2Right

	CmdPause // also restarts after a game over
	CmdTheme
	CmdSave
	CmdLoad
	CmdQuit

	// Menu only
	CmdStart
	CmdTwoPlayer
	CmdEasy
	CmdMedium
	CmdHard
)

// InputSource drains pending commands once per frame. Delivery order
// is preserved.
type InputSource interface {
	Poll() []Command
}

// Renderer draws one frame from a read-only snapshot.
type Renderer interface {
	Render(snap *Snapshot)
}

// Sound identifies one of the built-in effects.
type Sound int

const (
	SoundEat Sound = iota
	SoundSpecial
	SoundGameOver
	SoundSelect
)

// AudioSink plays short effects. Implementations must not block the
// frame loop.
type AudioSink interface {
	Play(s Sound)
}

// NopAudio is the sink used when no audio device is available.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
