// Package logger holds the module-wide structured logger used by
// key generation and other long-running operations. It defaults to a
// discard logger so importing this module is silent unless a caller opts
// in with SetLogger.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the currently configured logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the module-wide logger, e.g. with one that writes to
// stderr in a CLI front-end.
func SetLogger(l log.Logger) {
	logger = l
}
