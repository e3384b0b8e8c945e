package player

import "errors"

var (
	ErrExhausted          = errors.New("sample source exhausted")
	ErrBackendUnavailable = errors.New("audio backend not available in this build")
	ErrUnknownBackend     = errors.New("unknown audio backend")
	ErrUnsupportedLayout  = errors.New("unsupported stream layout")
)
