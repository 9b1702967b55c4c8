package fstream

import "errors"

var (
	ErrNotOpen          = errors.New("the stream is not open")
	ErrPushbackFull     = errors.New("only one byte of pushback is available")
	ErrLockNotSupported = errors.New("the stream handle does not support locking")
)
