// Package logging is a thin helper over "github.com/op/go-logging" so
// that packages only need one line to obtain a correctly formatted,
// correctly leveled *logging.Logger.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/mkorhonen/bitperft/config"
)

var (
	standardLog *logging.Logger
	perftLog    *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	perftLog = logging.MustGetLogger("perft")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard Logger, configured with an os.Stdout
// backend and the package's default format, at the level currently
// set in config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetPerftLog returns the Logger used by the perft runner to report
// per-depth progress.
func GetPerftLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.PerftLogLevel), "")
	perftLog.SetBackend(leveled)
	return perftLog
}

// GetTestLog returns the Logger used by tests.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.DEBUG, "")
	testLog.SetBackend(leveled)
	return testLog
}
