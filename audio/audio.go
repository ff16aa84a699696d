// Package audio synthesizes the game's sound effects at startup and
// plays them through oto. No sample assets are shipped.
package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"snake-arcade/game"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	volume = 0.55
)

// Sink plays the four game sounds. Buffers are synthesized once at
// construction; each Play streams a fresh reader over the shared
// buffer from its own goroutine.
type Sink struct {
	ctx     *oto.Context
	ready   chan struct{}
	buffers map[game.Sound][]byte
}

func NewSink() (*Sink, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Sink{
		ctx:   ctx,
		ready: ready,
		buffers: map[game.Sound][]byte{
			game.SoundEat:      genEat(),
			game.SoundSpecial:  genSpecial(),
			game.SoundGameOver: genGameOver(),
			game.SoundSelect:   genSelect(),
		},
	}, nil
}

func (s *Sink) Play(sound game.Sound) {
	select {
	case <-s.ready:
	default:
		return
	}
	buf, ok := s.buffers[sound]
	if !ok {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: buf})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]; attack, decay
// and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample. carrier is the base frequency,
// modRatio the modulator/carrier ratio, modIdx the modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// genEat: short ascending FM pop for plain food.
func genEat() []byte {
	n := int(0.08 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.12)
		freq := 420 + 640*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSpecial: two-note rising bell chirp for special food.
func genSpecial() []byte {
	notes := []float64{659.25, 987.77} // E5 B5
	noteLen := sampleRate * 70 / 1000
	tail := int(0.14 * sampleRate)
	total := len(notes)*noteLen + tail
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 2.756, 4.0*env) * env * 0.36
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, notes staggered.
func genGameOver() []byte {
	dur := 0.7
	n := int(dur * sampleRate)
	notes := []struct{ freq, onset float64 }{
		{392.00, 0.00}, // G4
		{311.13, 0.13}, // Eb4
		{261.63, 0.26}, // C4
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * sampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / sampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.02)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSelect: crisp menu click.
func genSelect() []byte {
	n := sampleRate * 60 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1200 - 550*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.36
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
