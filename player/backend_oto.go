package player

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// otoBackend drives an Engine from an oto player, which reads raw PCM bytes
// on oto's own goroutine.
type otoBackend struct {
	cfg    StreamConfig
	ctx    *oto.Context
	player *oto.Player
}

func newOtoBackend(cfg StreamConfig) (Backend, error) {
	op := &oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       otoFormat(cfg.Format),
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("oto: %w", err)
	}
	<-ready
	return &otoBackend{cfg: cfg, ctx: ctx}, nil
}

func otoFormat(f SampleFormat) oto.Format {
	switch f {
	case Int16:
		return oto.FormatSignedInt16LE
	case Uint8:
		return oto.FormatUnsignedInt8
	default:
		return oto.FormatFloat32LE
	}
}

func (b *otoBackend) Start(e *Engine) error {
	b.player = b.ctx.NewPlayer(&pcmReader{e: e, format: b.cfg.Format})
	// Keep roughly 100ms queued so the visualization does not lag the speakers.
	frame := b.cfg.Channels * b.cfg.Format.Size()
	b.player.SetBufferSize(b.cfg.SampleRate / 10 * frame)
	b.player.Play()
	return nil
}

func (b *otoBackend) Close() error {
	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	return err
}

// pcmReader encodes engine output in the stream's sample format.
type pcmReader struct {
	e      *Engine
	format SampleFormat
}

func (r *pcmReader) Read(p []byte) (int, error) {
	size := r.format.Size()
	n := len(p) / size
	for i := 0; i < n; i++ {
		r.format.Put(p[i*size:], r.e.Next())
	}
	return n * size, nil
}
