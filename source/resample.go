package source

import (
	"fmt"

	"github.com/gopxl/beep/v2"
)

// resampleQuality matches the quality the player pipeline has always used.
const resampleQuality = 4

// Resample converts s to the given rate. It returns s unchanged when the rates
// already match.
func Resample(s *Samples, rate int) (*Samples, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, rate)
	}
	if s.rate == rate {
		return s, nil
	}
	if s.channels != 1 && s.channels != 2 {
		return nil, fmt.Errorf("%w: cannot resample %d channels", ErrUnsupportedChannels, s.channels)
	}

	frames := len(s.data) / s.channels
	want := int(int64(frames) * int64(rate) / int64(s.rate))

	src := &frameStreamer{data: s.data, channels: s.channels}
	r := beep.Resample(resampleQuality, beep.SampleRate(s.rate), beep.SampleRate(rate), src)

	data := make([]float32, 0, want*s.channels)
	data = appendStream(data, beep.Take(want, r), s.channels)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	return &Samples{
		data:     data,
		rate:     rate,
		channels: s.channels,
		name:     s.name,
	}, nil
}

// frameStreamer replays interleaved mono or stereo data as a beep.Streamer.
type frameStreamer struct {
	data     []float32
	channels int
	pos      int
}

func (f *frameStreamer) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && f.pos+f.channels <= len(f.data) {
		l := float64(f.data[f.pos])
		r := l
		if f.channels == 2 {
			r = float64(f.data[f.pos+1])
		}
		samples[n] = [2]float64{l, r}
		f.pos += f.channels
		n++
	}
	return n, n > 0
}

func (f *frameStreamer) Err() error { return nil }
