//go:build headless

// beeper_headless.go - no-op beeper for headless test environments

package host

type Beeper struct {
	active bool
}

func NewBeeper(freqHz float64) (*Beeper, error) {
	return &Beeper{}, nil
}

func (b *Beeper) SetActive(on bool) {
	b.active = on
}

func (b *Beeper) Start() {}

func (b *Beeper) Close() {}
