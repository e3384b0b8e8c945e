package source

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported audio file format")
	ErrInvalidFormat       = errors.New("invalid audio format")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)
