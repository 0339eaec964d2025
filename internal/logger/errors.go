package logger

import "errors"

// ErrUnknownLevel is returned for log levels zap does not know.
var ErrUnknownLevel = errors.New("unknown log level")
