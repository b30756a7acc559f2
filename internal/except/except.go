package except

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrIO wraps failures reported by the filesystem, such as permission or read errors.
var ErrIO = errors.New("unable to read filesystem")

// Must panics with the formatted message if pred is false. It guards invariants which only a
// programming error can break.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics if err is not nil.
func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
