package game

import (
	"log"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// State names the session's place in the menu/play/game-over flow.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateGameOver
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "terminated"
	}
}

// minTickRate floors the effective speed so stacked slowdowns can
// never stall the simulation.
const minTickRate = 5

// Config carries everything a session needs at construction. Zero
// values fall back to sensible defaults.
type Config struct {
	Board      types.Board
	Difficulty string
	Theme      string
	TwoPlayer  bool
	DataDir    string
	Seed       uint64
	Clock      Clock
	Audio      AudioSink
}

// Session owns the complete game state. It is single-threaded: one
// goroutine applies commands, advances time and reads snapshots, so no
// locking happens anywhere in the simulation.
type Session struct {
	board      types.Board
	difficulty DifficultyProfile
	theme      int // index into Themes
	twoPlayer  bool

	snakes    []*entity.Snake
	obstacles []types.Cell

	boardMgr  *manager.BoardManager
	foodMgr   *manager.FoodManager
	effectMgr *manager.EffectManager
	collMgr   *manager.CollisionManager
	stateMgr  *manager.StateManager

	rng   *rand.Rand
	clock Clock
	audio AudioSink

	state       State
	paused      bool
	lastTick    time.Time
	startedAt   time.Time
	highScore   int
	gamesPlayed int
}

func NewSession(cfg Config) *Session {
	if cfg.Board.Width == 0 || cfg.Board.Height == 0 {
		cfg.Board = types.Board{Width: types.DefaultBoardWidth, Height: types.DefaultBoardHeight}
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Audio == nil {
		cfg.Audio = NopAudio{}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(cfg.Clock.Now().UnixNano())
	}

	s := &Session{
		board:      cfg.Board,
		difficulty: ParseDifficulty(cfg.Difficulty),
		theme:      ThemeIndex(cfg.Theme),
		twoPlayer:  cfg.TwoPlayer,
		rng:        rand.New(rand.NewSource(seed)),
		clock:      cfg.Clock,
		audio:      cfg.Audio,
		state:      StateMenu,
	}
	s.boardMgr = manager.NewBoardManager(s.board, s.rng)
	s.foodMgr = manager.NewFoodManager(s.boardMgr, s.rng)
	s.effectMgr = manager.NewEffectManager()
	s.collMgr = manager.NewCollisionManager(s.board, s.foodMgr, s.effectMgr)
	s.stateMgr = manager.NewStateManager(cfg.DataDir)

	s.highScore = s.stateMgr.LoadHighScore()
	s.gamesPlayed = len(s.stateMgr.MatchHistory())
	return s
}

// Apply consumes one frame's worth of commands in order.
func (s *Session) Apply(cmds []Command) {
	for _, cmd := range cmds {
		switch s.state {
		case StateMenu:
			s.applyMenu(cmd)
		case StateRunning:
			s.applyRunning(cmd)
		case StateGameOver:
			s.applyGameOver(cmd)
		}
	}
}

func (s *Session) applyMenu(cmd Command) {
	switch cmd {
	case CmdEasy:
		s.difficulty = Difficulties[0]
		s.audio.Play(SoundSelect)
	case CmdMedium:
		s.difficulty = Difficulties[1]
		s.audio.Play(SoundSelect)
	case CmdHard:
		s.difficulty = Difficulties[2]
		s.audio.Play(SoundSelect)
	case CmdTheme:
		s.theme = (s.theme + 1) % len(Themes)
		s.audio.Play(SoundSelect)
	case CmdTwoPlayer:
		s.twoPlayer = !s.twoPlayer
		s.audio.Play(SoundSelect)
	case CmdStart:
		s.audio.Play(SoundSelect)
		s.Reset()
	case CmdLoad:
		s.load()
	case CmdQuit:
		s.state = StateTerminated
	}
}

func (s *Session) applyRunning(cmd Command) {
	switch cmd {
	case CmdP1Up:
		s.snakes[0].SetIntent(types.DirUp)
	case CmdP1Down:
		s.snakes[0].SetIntent(types.DirDown)
	case CmdP1Left:
		s.snakes[0].SetIntent(types.DirLeft)
	case CmdP1Right:
		s.snakes[0].SetIntent(types.DirRight)
	case CmdP2Up, CmdP2Down, CmdP2Left, CmdP2Right:
		if len(s.snakes) > 1 {
			dirs := map[Command]types.Direction{
				CmdP2Up: types.DirUp, CmdP2Down: types.DirDown,
				CmdP2Left: types.DirLeft, CmdP2Right: types.DirRight,
			}
			s.snakes[1].SetIntent(dirs[cmd])
		}
	case CmdPause:
		s.paused = !s.paused
	case CmdTheme:
		s.theme = (s.theme + 1) % len(Themes)
	case CmdSave:
		s.save()
	case CmdLoad:
		s.load()
	case CmdQuit:
		s.state = StateTerminated
	}
}

func (s *Session) applyGameOver(cmd Command) {
	switch cmd {
	case CmdPause:
		s.Reset()
	case CmdLoad:
		s.load()
	case CmdQuit:
		s.state = StateTerminated
	}
}

// Update advances the simulation by one frame. The tick gate fires
// when enough time has passed for the current effective speed; effect
// expiry is checked on every frame regardless, so a timer can lapse
// between ticks. While paused the gate is pinned to now, which keeps
// ticks from queuing up.
func (s *Session) Update() {
	if s.state != StateRunning {
		return
	}
	now := s.clock.Now()
	if s.paused {
		s.lastTick = now
		return
	}

	if now.Sub(s.lastTick) >= s.tickInterval() {
		s.advance(now)
		s.lastTick = now
	}

	s.effectMgr.Expire(now, s.snakes)
}

// tickInterval derives the gate width from the difficulty's base rate
// plus every snake's live modifier, floored at minTickRate. It is
// recomputed on every check so a mid-flight effect shifts the very
// next tick.
func (s *Session) tickInterval() time.Duration {
	speed := s.difficulty.Speed
	for _, sn := range s.snakes {
		if sn != nil {
			speed += sn.SpeedEffect
		}
	}
	if speed < minTickRate {
		speed = minTickRate
	}
	return time.Duration(1000/speed) * time.Millisecond
}

func (s *Session) advance(now time.Time) {
	for _, sn := range s.snakes {
		if sn != nil && sn.Alive {
			sn.Advance()
		}
	}

	out := s.collMgr.Resolve(s.snakes, s.obstacles, now)
	for _, kind := range out.Eaten {
		if kind == entity.FoodNormal {
			s.audio.Play(SoundEat)
		} else {
			s.audio.Play(SoundSpecial)
		}
	}

	if s.allDead() {
		s.finish(now)
	}
}

func (s *Session) allDead() bool {
	for _, sn := range s.snakes {
		if sn != nil && sn.Alive {
			return false
		}
	}
	return true
}

// finish closes out the match: the high score is written only when the
// combined score strictly beats it, and the game lands in the history.
func (s *Session) finish(now time.Time) {
	s.state = StateGameOver
	s.audio.Play(SoundGameOver)

	total := s.Score()
	if total > s.highScore {
		s.highScore = total
		if err := s.stateMgr.SaveHighScore(s.highScore); err != nil {
			log.Printf("session: high score not recorded: %v", err)
		}
	}
	s.stateMgr.RecordMatch(manager.MatchRecord{
		StartTime:  s.startedAt,
		EndTime:    now,
		Difficulty: s.difficulty.Name,
		TwoPlayer:  s.twoPlayer,
		Score:      total,
		HighScore:  s.highScore,
	})
	s.gamesPlayed++
}

// Reset rebuilds fresh play state from the current difficulty, theme
// and mode. It serves both the menu's start and the restart after a
// game over.
func (s *Session) Reset() {
	w, h := s.board.Width, s.board.Height
	s.snakes = []*entity.Snake{
		entity.NewSnake(types.Cell{X: types.Align(w / 4), Y: types.Align(h / 2)}, types.DirRight),
	}
	if s.twoPlayer {
		s.snakes = append(s.snakes,
			entity.NewSnake(types.Cell{X: types.Align(3 * w / 4), Y: types.Align(h / 2)}, types.DirRight))
	}

	excluded := make(map[types.Cell]bool, len(s.snakes))
	for _, sn := range s.snakes {
		excluded[sn.Head()] = true
	}
	s.obstacles = s.boardMgr.CreateObstacles(s.difficulty.Obstacles, excluded)

	s.effectMgr.Reset()
	s.foodMgr.Clear()
	s.foodMgr.SpawnCycle(s.snakes, s.obstacles)

	now := s.clock.Now()
	s.state = StateRunning
	s.paused = false
	s.lastTick = now
	s.startedAt = now
}

func (s *Session) save() {
	st := manager.SessionState{
		Difficulty: s.difficulty.Name,
		Theme:      Themes[s.theme].Name,
		TwoPlayer:  s.twoPlayer,
		Snakes:     s.snakes,
		Obstacles:  s.obstacles,
		Foods:      s.foodMgr.Foods(),
		HighScore:  s.highScore,
	}
	if err := s.stateMgr.SaveSession(st); err != nil {
		log.Printf("session: save failed: %v", err)
	}
}

// load restores the saved game if one exists. Armed effect timers are
// deliberately left alone: the save format has never carried them.
func (s *Session) load() {
	st, ok := s.stateMgr.LoadSession()
	if !ok {
		log.Printf("session: no saved game to load")
		return
	}
	s.difficulty = ParseDifficulty(st.Difficulty)
	s.theme = ThemeIndex(st.Theme)
	s.twoPlayer = st.TwoPlayer
	s.snakes = st.Snakes
	s.obstacles = st.Obstacles
	s.foodMgr.SetFoods(st.Foods)
	s.highScore = st.HighScore

	now := s.clock.Now()
	s.state = StateRunning
	s.lastTick = now
	s.startedAt = now
}

// Snapshot copies the drawable state for frontends.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		State:       s.state,
		Paused:      s.paused,
		Board:       s.board,
		Theme:       Themes[s.theme],
		Difficulty:  s.difficulty.Name,
		TwoPlayer:   s.twoPlayer,
		Score:       s.Score(),
		HighScore:   s.highScore,
		GamesPlayed: s.gamesPlayed,
		Obstacles:   append([]types.Cell(nil), s.obstacles...),
		Foods:       append([]entity.Food(nil), s.foodMgr.Foods()...),
	}
	for _, sn := range s.snakes {
		if sn == nil {
			continue
		}
		snap.Snakes = append(snap.Snakes, SnakeView{
			Body:  append([]types.Cell(nil), sn.Body...),
			Dir:   sn.Direction,
			Alive: sn.Alive,
			Score: sn.Score,
		})
	}
	return snap
}

// Score is the combined score across all snakes, dead ones included.
func (s *Session) Score() int {
	total := 0
	for _, sn := range s.snakes {
		if sn != nil {
			total += sn.Score
		}
	}
	return total
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) HighScore() int {
	return s.highScore
}

// Done reports whether the session has been quit.
func (s *Session) Done() bool {
	return s.state == StateTerminated
}
