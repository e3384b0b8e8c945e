package source

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/jfreymuth/oggvorbis"
)

// WAV format tags.
const (
	wavPCM        = 0x0001
	wavFloat      = 0x0003
	wavExtensible = 0xFFFE
)

// streamChunk is the number of frames pulled per Stream call when draining
// a beep decoder.
const streamChunk = 1024

// Decode reads the whole file at path into memory. The decoder is picked by
// file extension.
func Decode(path string) (*Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var (
		data     []float32
		rate     int
		channels int
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		data, rate, channels, err = decodeWAV(f)
	case ".ogg", ".oga":
		data, rate, channels, err = decodeOgg(f)
	case ".mp3":
		var s beep.StreamSeekCloser
		var format beep.Format
		s, format, err = mp3.Decode(f)
		if err == nil {
			data, rate, channels, err = drain(s, format)
		}
	case ".flac":
		var s beep.StreamSeekCloser
		var format beep.Format
		s, format, err = flac.Decode(f)
		if err == nil {
			data, rate, channels, err = drain(s, format)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return New(data, rate, channels, path)
}

func decodeWAV(r io.ReadSeeker) ([]float32, int, int, error) {
	tag, err := wavFormatTag(r)
	if err != nil {
		return nil, 0, 0, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, 0, 0, err
	}

	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("%w: unreadable wav header", ErrInvalidFormat)
	}
	depth := int(d.BitDepth)
	switch {
	case tag == wavPCM && depth >= 8 && depth <= 32:
	case tag == wavFloat && depth == 32:
	default:
		return nil, 0, 0, fmt.Errorf("%w: wav format 0x%04x with %d-bit samples", ErrInvalidFormat, tag, depth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}
	if buf.Format == nil {
		return nil, 0, 0, fmt.Errorf("%w: missing fmt chunk", ErrInvalidFormat)
	}

	out := make([]float32, len(buf.Data))
	switch {
	case tag == wavFloat:
		// The decoder hands back the raw IEEE bits as a signed int32.
		for i, v := range buf.Data {
			out[i] = math.Float32frombits(uint32(v))
		}
	case depth == 8:
		// 8-bit WAV is unsigned with a 128 midpoint.
		for i, v := range buf.Data {
			out[i] = float32(v-128) / 128
		}
	default:
		scale := float32(int64(1) << (depth - 1))
		for i, v := range buf.Data {
			out[i] = float32(v) / scale
		}
	}
	return out, buf.Format.SampleRate, buf.Format.NumChannels, nil
}

// wavFormatTag reads the fmt chunk and returns its format tag. For
// WAVE_FORMAT_EXTENSIBLE it returns the tag embedded in the subformat GUID,
// which the wav decoder skips over.
func wavFormatTag(r io.Reader) (uint16, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if p.Format != riff.WavFormatID {
		return 0, fmt.Errorf("%w: riff form %q", ErrInvalidFormat, p.Format[:])
	}
	for {
		ch, err := p.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("%w: no fmt chunk", ErrInvalidFormat)
			}
			return 0, err
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		var tag uint16
		if err := ch.ReadLE(&tag); err != nil {
			return 0, fmt.Errorf("%w: short fmt chunk", ErrInvalidFormat)
		}
		if tag != wavExtensible {
			return tag, nil
		}
		if ch.Size < 26 {
			return 0, fmt.Errorf("%w: short extensible fmt chunk", ErrInvalidFormat)
		}
		// channels, rate, byte rate, block align, bits, cbSize, valid bits,
		// channel mask
		var (
			skip [22]byte
			sub  uint16
		)
		if err := ch.ReadLE(&skip); err != nil {
			return 0, err
		}
		if err := ch.ReadLE(&sub); err != nil {
			return 0, err
		}
		return sub, nil
	}
}

func decodeOgg(r io.Reader) ([]float32, int, int, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, 0, err
	}
	return data, format.SampleRate, format.Channels, nil
}

// drain reads a beep stream to the end. beep always yields stereo frames, so
// mono sources keep only the left channel.
func drain(s beep.StreamSeekCloser, format beep.Format) ([]float32, int, int, error) {
	defer s.Close()

	channels := format.NumChannels
	if channels != 1 && channels != 2 {
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	data := make([]float32, 0, max(s.Len(), 0)*channels)
	data = appendStream(data, s, channels)
	if err := s.Err(); err != nil {
		return nil, 0, 0, err
	}
	return data, int(format.SampleRate), channels, nil
}

func appendStream(dst []float32, s beep.Streamer, channels int) []float32 {
	buf := make([][2]float64, streamChunk)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			dst = append(dst, float32(frame[0]))
			if channels == 2 {
				dst = append(dst, float32(frame[1]))
			}
		}
		if !ok {
			return dst
		}
	}
}
