package main

import (
	"io"

	"github.com/op/go-logging"
)

const logFormat = "%{color}%{time:15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{message}"

// initLogging routes every module logger to w, at DEBUG when verbose and
// WARNING otherwise.
func initLogging(w io.Writer, verbose bool) {
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(logFormat),
		),
	)
	level := logging.WARNING
	if verbose {
		level = logging.DEBUG
	}
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}
