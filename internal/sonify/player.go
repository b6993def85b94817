package sonify

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

func initOto(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Player plays rendered clips one at a time. Starting a clip stops the
// previous one. The audio device is opened lazily on first Play; its
// sample rate is fixed from then on.
type Player struct {
	sampleRate int

	mu      sync.Mutex
	current *oto.Player
}

// NewPlayer creates a Player for clips rendered at sampleRate.
func NewPlayer(sampleRate int) *Player {
	return &Player{sampleRate: sampleRate}
}

// Play starts pcm and returns without waiting for it to finish.
func (p *Player) Play(pcm []byte) error {
	ctx, err := initOto(p.sampleRate)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Pause()
	}
	p.current = ctx.NewPlayer(bytes.NewReader(pcm))
	p.current.Play()
	return nil
}

// Close stops any playing clip.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Pause()
		p.current = nil
	}
}
