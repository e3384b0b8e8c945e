//go:build portaudio

package player

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// portAudioBackend opens the default PortAudio output with a typed callback
// picked once from the sample format.
type portAudioBackend struct {
	cfg    StreamConfig
	stream *portaudio.Stream
}

func newPortAudioBackend(cfg StreamConfig) (Backend, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio: %w", err)
	}
	return &portAudioBackend{cfg: cfg}, nil
}

func (b *portAudioBackend) Start(e *Engine) error {
	var callback any
	switch b.cfg.Format {
	case Int16:
		callback = func(out []int16) {
			for i := range out {
				out[i] = toInt16(e.Next())
			}
		}
	case Uint8:
		callback = func(out []uint8) {
			for i := range out {
				out[i] = toUint8(e.Next())
			}
		}
	default:
		callback = func(out []float32) {
			e.Fill(out)
		}
	}

	s, err := portaudio.OpenDefaultStream(0, b.cfg.Channels, float64(b.cfg.SampleRate),
		portaudio.FramesPerBufferUnspecified, callback)
	if err != nil {
		return fmt.Errorf("portaudio: open stream: %w", err)
	}
	if err := s.Start(); err != nil {
		s.Close()
		return fmt.Errorf("portaudio: start stream: %w", err)
	}
	b.stream = s
	return nil
}

func (b *portAudioBackend) Close() error {
	var errs []error
	if b.stream != nil {
		errs = append(errs, b.stream.Stop(), b.stream.Close())
		b.stream = nil
	}
	errs = append(errs, portaudio.Terminate())
	return errors.Join(errs...)
}
