// Package except contains helpers for invariant violations and error reporting.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with the formatted message if the predicate is false.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics if the error is not nil.
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
