//go:build !headless

// beeper.go - OTO v3 square-wave beeper driven by the sound timer

package host

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const beeperSampleRate = 44100

// Beeper renders a square wave for as long as the sound timer (ST) is
// nonzero. SetActive is called once per Step from the run loop; the
// oto player itself runs continuously and just emits silence when idle.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player

	active atomic.Bool
	phase  float64
	freq   float64

	mutex   sync.Mutex
	started bool
}

// NewBeeper opens an OTO context at a fixed sample rate and wires a
// square-wave generator to it. The player is created but not started;
// call Start once the host is ready to produce sound.
func NewBeeper(freqHz float64) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   beeperSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &Beeper{ctx: ctx, freq: freqHz}
	b.player = ctx.NewPlayer(b)
	return b, nil
}

// SetActive turns the tone on or off. Called from the run loop after
// each step with whether the CPU's ST register is nonzero.
func (b *Beeper) SetActive(on bool) {
	b.active.Store(on)
}

// Read implements io.Reader for the oto player, synthesizing a square
// wave sample-by-sample while active and silence otherwise.
func (b *Beeper) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	samples := make([]float32, numSamples)

	if b.active.Load() {
		step := b.freq / beeperSampleRate
		for i := range samples {
			if b.phase < 0.5 {
				samples[i] = 0.2
			} else {
				samples[i] = -0.2
			}
			b.phase += step
			if b.phase >= 1 {
				b.phase -= 1
			}
		}
	}

	for i, s := range samples {
		bits := math.Float32bits(s)
		p[i*4] = byte(bits)
		p[i*4+1] = byte(bits >> 8)
		p[i*4+2] = byte(bits >> 16)
		p[i*4+3] = byte(bits >> 24)
	}
	return len(p), nil
}

// Start begins playback. Safe to call multiple times.
func (b *Beeper) Start() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if !b.started {
		b.player.Play()
		b.started = true
	}
}

// Close releases the underlying player and context resources.
func (b *Beeper) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}
