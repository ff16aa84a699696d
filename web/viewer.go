// Package web streams live game frames to browsers over a WebSocket.
// The viewer is passive: spectators watch, all input stays local.
package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

//go:embed index.html
var indexHTML []byte

// broadcastRate caps frame traffic well below the render rate.
const broadcastRate = time.Second / 15

// Allow any origin for dev. Tighten this in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type frame struct {
	State      string       `json:"state"`
	Paused     bool         `json:"paused"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Background string       `json:"background"`
	TextColor  string       `json:"text_color"`
	Obstacle   string       `json:"obstacle_color"`
	Score      int          `json:"score"`
	HighScore  int          `json:"high_score"`
	Snakes     []frameSnake `json:"snakes"`
	Foods      []frameFood  `json:"foods"`
	Obstacles  [][2]int     `json:"obstacles"`
}

type frameSnake struct {
	Body  [][2]int `json:"body"`
	Alive bool     `json:"alive"`
	Score int      `json:"score"`
	Color string   `json:"color"`
}

type frameFood struct {
	Pos   [2]int `json:"pos"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
}

// Viewer broadcasts snapshots to every connected spectator. It
// implements the renderer interface so the main loop can feed it like
// any other display.
type Viewer struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	lastSent time.Time
}

// NewViewer starts the HTTP server on addr and returns the broadcast
// half. The server lives for the rest of the process.
func NewViewer(addr string) *Viewer {
	v := &Viewer{conns: make(map[*websocket.Conn]bool)}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", v.handleWS)

	go func() {
		log.Printf("web: viewer listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("web: server stopped: %v", err)
		}
	}()
	return v
}

func (v *Viewer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: upgrade failed: %v", err)
		return
	}
	v.mu.Lock()
	v.conns[conn] = true
	v.mu.Unlock()

	// Spectators send nothing useful; the read loop only detects the
	// connection going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				v.drop(conn)
				return
			}
		}
	}()
}

func (v *Viewer) drop(conn *websocket.Conn) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.conns[conn] {
		delete(v.conns, conn)
		conn.Close()
	}
}

func (v *Viewer) Render(snap *game.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.conns) == 0 {
		return
	}
	now := time.Now()
	if now.Sub(v.lastSent) < broadcastRate {
		return
	}
	v.lastSent = now

	data, err := json.Marshal(buildFrame(snap))
	if err != nil {
		log.Printf("web: frame encode failed: %v", err)
		return
	}
	for conn := range v.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(v.conns, conn)
			conn.Close()
		}
	}
}

func buildFrame(snap *game.Snapshot) frame {
	theme := snap.Theme
	f := frame{
		State:      snap.State.String(),
		Paused:     snap.Paused,
		Width:      snap.Board.Width,
		Height:     snap.Board.Height,
		Background: hexColor(theme.Bg),
		TextColor:  hexColor(theme.Text),
		Obstacle:   hexColor(theme.Obstacle),
		Score:      snap.Score,
		HighScore:  snap.HighScore,
		Obstacles:  make([][2]int, 0, len(snap.Obstacles)),
		Snakes:     make([]frameSnake, 0, len(snap.Snakes)),
		Foods:      make([]frameFood, 0, len(snap.Foods)),
	}
	for _, o := range snap.Obstacles {
		f.Obstacles = append(f.Obstacles, [2]int{o.X, o.Y})
	}
	bodyColors := []types.Color{theme.Snake1, theme.Snake2}
	for i, sn := range snap.Snakes {
		fs := frameSnake{
			Body:  make([][2]int, 0, len(sn.Body)),
			Alive: sn.Alive,
			Score: sn.Score,
			Color: hexColor(bodyColors[i%len(bodyColors)]),
		}
		for _, c := range sn.Body {
			fs.Body = append(fs.Body, [2]int{c.X, c.Y})
		}
		f.Snakes = append(f.Snakes, fs)
	}
	for _, fd := range snap.Foods {
		f.Foods = append(f.Foods, frameFood{
			Pos:   [2]int{fd.Pos.X, fd.Pos.Y},
			Kind:  fd.Kind.String(),
			Color: hexColor(theme.FoodColor(fd.Kind)),
		})
	}
	return f
}

func hexColor(c types.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
