package manager

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// File names inside the state directory. They match the layout the
// game has always written, so existing saves keep loading.
const (
	HighScoreFile = "high_score.json"
	SaveFile      = "snake_save.json"
	HistoryFile   = "match_history.json"
)

// SessionState is the domain-side view of a saved game. The JSON shape
// lives entirely inside this package.
type SessionState struct {
	Difficulty string
	Theme      string
	TwoPlayer  bool
	Snakes     []*entity.Snake // index 0 is player one
	Obstacles  []types.Cell
	Foods      []entity.Food
	HighScore  int
}

// MatchRecord is one finished game in the history file.
type MatchRecord struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Difficulty string    `json:"difficulty"`
	TwoPlayer  bool      `json:"two_player"`
	Score      int       `json:"score"`
	HighScore  int       `json:"high_score"`
}

type sessionRecord struct {
	Difficulty string       `json:"difficulty"`
	Theme      string       `json:"theme"`
	TwoPlayer  bool         `json:"two_player"`
	Snake1     *snakeRecord `json:"snake1"`
	Snake2     *snakeRecord `json:"snake2"`
	Obstacles  [][2]int     `json:"obstacles"`
	Foods      []foodRecord `json:"foods"`
	HighScore  int          `json:"high_score"`
}

type snakeRecord struct {
	Body        [][2]int `json:"body"`
	Dir         [2]int   `json:"dir"`
	PendingDir  [2]int   `json:"pending_dir"`
	Grow        int      `json:"grow"`
	Alive       bool     `json:"alive"`
	Score       int      `json:"score"`
	SpeedEffect int      `json:"speed_effect"`
}

type foodRecord struct {
	Pos  [2]int `json:"pos"`
	Kind string `json:"kind"`
}

type highScoreRecord struct {
	HighScore int `json:"high_score"`
}

// StateManager persists high scores, saved games and the match history
// as JSON files in one directory. Every failure degrades: a session
// that cannot be written is reported, one that cannot be read behaves
// like it was never saved.
type StateManager struct {
	dir string
}

func NewStateManager(dir string) *StateManager {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("state: could not create %s: %v", dir, err)
	}
	return &StateManager{dir: dir}
}

func (sm *StateManager) SaveSession(st SessionState) error {
	rec := sessionRecord{
		Difficulty: st.Difficulty,
		Theme:      st.Theme,
		TwoPlayer:  st.TwoPlayer,
		Obstacles:  cellsToPairs(st.Obstacles),
		Foods:      make([]foodRecord, 0, len(st.Foods)),
		HighScore:  st.HighScore,
	}
	if len(st.Snakes) > 0 {
		rec.Snake1 = snakeToRecord(st.Snakes[0])
	}
	if len(st.Snakes) > 1 {
		rec.Snake2 = snakeToRecord(st.Snakes[1])
	}
	for _, f := range st.Foods {
		rec.Foods = append(rec.Foods, foodRecord{
			Pos:  [2]int{f.Pos.X, f.Pos.Y},
			Kind: f.Kind.String(),
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(sm.dir, SaveFile), data, 0644)
}

// LoadSession returns the saved game, or ok=false when no usable save
// exists. A corrupt file behaves exactly like a missing one. Numeric
// fields absent from the file come back as zero.
func (sm *StateManager) LoadSession() (SessionState, bool) {
	data, err := os.ReadFile(filepath.Join(sm.dir, SaveFile))
	if err != nil {
		return SessionState{}, false
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("state: unreadable save, ignoring: %v", err)
		return SessionState{}, false
	}
	if rec.Snake1 == nil {
		return SessionState{}, false
	}

	st := SessionState{
		Difficulty: rec.Difficulty,
		Theme:      rec.Theme,
		TwoPlayer:  rec.TwoPlayer,
		Snakes:     []*entity.Snake{recordToSnake(rec.Snake1)},
		Obstacles:  pairsToCells(rec.Obstacles),
		Foods:      make([]entity.Food, 0, len(rec.Foods)),
		HighScore:  rec.HighScore,
	}
	if rec.Snake2 != nil {
		st.Snakes = append(st.Snakes, recordToSnake(rec.Snake2))
	}
	for _, f := range rec.Foods {
		st.Foods = append(st.Foods, entity.Food{
			Pos:  types.Cell{X: f.Pos[0], Y: f.Pos[1]},
			Kind: entity.ParseFoodKind(f.Kind),
		})
	}
	return st, true
}

func (sm *StateManager) SaveHighScore(score int) error {
	data, err := json.Marshal(highScoreRecord{HighScore: score})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(sm.dir, HighScoreFile), data, 0644)
}

// LoadHighScore returns the stored high score, or zero when the file
// is missing or unreadable.
func (sm *StateManager) LoadHighScore() int {
	data, err := os.ReadFile(filepath.Join(sm.dir, HighScoreFile))
	if err != nil {
		return 0
	}
	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	return rec.HighScore
}

// RecordMatch appends a finished game to the history file. History
// problems are logged and never interrupt play.
func (sm *StateManager) RecordMatch(rec MatchRecord) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	history := sm.MatchHistory()
	history = append(history, rec)

	data, err := json.MarshalIndent(history, "", "  ")
	if err == nil {
		err = os.WriteFile(filepath.Join(sm.dir, HistoryFile), data, 0644)
	}
	if err != nil {
		log.Printf("state: could not record match: %v", err)
	}
}

// MatchHistory returns every recorded match, oldest first. A missing
// or unreadable file reads as an empty history.
func (sm *StateManager) MatchHistory() []MatchRecord {
	data, err := os.ReadFile(filepath.Join(sm.dir, HistoryFile))
	if err != nil {
		return nil
	}
	var history []MatchRecord
	if err := json.Unmarshal(data, &history); err != nil {
		log.Printf("state: unreadable match history, starting fresh: %v", err)
		return nil
	}
	return history
}

func snakeToRecord(s *entity.Snake) *snakeRecord {
	if s == nil {
		return nil
	}
	return &snakeRecord{
		Body:        cellsToPairs(s.Body),
		Dir:         [2]int{s.Direction.DX, s.Direction.DY},
		PendingDir:  [2]int{s.Pending.DX, s.Pending.DY},
		Grow:        s.Growth,
		Alive:       s.Alive,
		Score:       s.Score,
		SpeedEffect: s.SpeedEffect,
	}
}

func recordToSnake(r *snakeRecord) *entity.Snake {
	return &entity.Snake{
		Body:        pairsToCells(r.Body),
		Direction:   types.Direction{DX: r.Dir[0], DY: r.Dir[1]},
		Pending:     types.Direction{DX: r.PendingDir[0], DY: r.PendingDir[1]},
		Growth:      r.Grow,
		Alive:       r.Alive,
		Score:       r.Score,
		SpeedEffect: r.SpeedEffect,
	}
}

func cellsToPairs(cells []types.Cell) [][2]int {
	pairs := make([][2]int, len(cells))
	for i, c := range cells {
		pairs[i] = [2]int{c.X, c.Y}
	}
	return pairs
}

func pairsToCells(pairs [][2]int) []types.Cell {
	cells := make([]types.Cell, len(pairs))
	for i, p := range pairs {
		cells[i] = types.Cell{X: p[0], Y: p[1]}
	}
	return cells
}
