// Package config holds process-wide configuration for the engine: log
// levels and perft defaults, readable from an optional TOML file and
// overridable from the command line.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// LogLevel is the general log level, set by default, by the config
	// file, or by a command line flag.
	LogLevel = LogLevels["info"]

	// PerftLogLevel is the log level used by the perft runner.
	PerftLogLevel = LogLevels["info"]

	// ConfFile is the path to the TOML configuration file. May be
	// overridden before calling Setup.
	ConfFile = "./config.toml"

	// Settings is the configuration tree read in from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	LogLvl      string
	PerftLogLvl string
}

type perftConfiguration struct {
	// DefaultDepth is used by the CLI driver when -perft is not given
	// (or is 0).
	DefaultDepth int
	// DefaultFen is used by the CLI driver when -fen is not given.
	DefaultFen string
}

func init() {
	// defaults which might be overwritten by the config file
	Settings.Log.LogLvl = "info"
	Settings.Log.PerftLogLvl = "info"
	Settings.Perft.DefaultDepth = 5
	Settings.Perft.DefaultFen = ""
}

// Setup reads ConfFile, if present, and applies its settings on top of
// the defaults. It is safe to call more than once; only the first call
// has an effect.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		// a missing or malformed config file is not fatal: the
		// compiled-in defaults above already put Settings in a
		// usable state.
		fmt.Println(err)
	}

	setupLogLvl()

	initialized = true
}

func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
		LogLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.PerftLogLvl]; found {
		PerftLogLevel = lvl
	}
}

// LogLevels maps string representations of log levels (as used in the
// config file and command line flags) to the numeric levels understood
// by github.com/op/go-logging.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
