//go:build !portaudio

package player

import "fmt"

func newPortAudioBackend(StreamConfig) (Backend, error) {
	return nil, fmt.Errorf("%w: rebuild with -tags portaudio", ErrBackendUnavailable)
}
