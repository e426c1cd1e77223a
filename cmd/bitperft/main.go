// Command bitperft runs perft (a standard move-generator correctness
// and speed benchmark) over a position given as a FEN string, or over
// the standard starting position by default.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkorhonen/bitperft/config"
	"github.com/mkorhonen/bitperft/fen"
	"github.com/mkorhonen/bitperft/logging"
	"github.com/mkorhonen/bitperft/magic"
	"github.com/mkorhonen/bitperft/movegen"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftLogLvl := flag.String("perftloglvl", "", "perft log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft from depth 1 up to the given depth on -fen")
	fenStr := flag.String("fen", "", "FEN of the position to run perft on (defaults to the config file's DefaultFen, else the starting position)")
	divide := flag.Bool("divide", false, "also prints the per-root-move node count for the deepest perft depth")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile of the run to ./ (see pkg/profile)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*perftLogLvl]; found {
		config.PerftLogLevel = lvl
	}
	logging.GetLog()

	position := *fenStr
	if position == "" {
		position = config.Settings.Perft.DefaultFen
	}
	if position == "" {
		position = fen.Named["StartingPosition"]
	}
	depth := *perft
	if depth == 0 {
		depth = config.Settings.Perft.DefaultDepth
	}

	tables := magic.NewTables()
	p := movegen.NewPerft(tables)

	if err := p.StartPerft(position, depth); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *divide {
		b, err := fen.Parse(position)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		for _, r := range p.Divide(b, depth) {
			out.Printf("%s: %d\n", r.Move, r.Nodes)
		}
	}
}

func printVersionInfo() {
	out.Println("bitperft")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
