package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseResult carries the outcome of ParseArgs: either a HostConfig ready
// to run, or an exit code and message for main() to surface and quit with
// (spec.md 6: -h/--help exits 0, an unknown flag exits 1).
type ParseResult struct {
	Config   HostConfig
	ExitCode int
	Message  string
	ShouldRun bool
}

// ParseArgs builds a HostConfig from argv on top of base, applying the
// flags spec.md 6 defines:
//   -h, --help       print usage, exit 0
//   -i, --no-ini     skip loading the INI config file
//   -v               LogLevel = INFO
//   -vv              LogLevel = DEBUG
//   <path>           trailing non-flag argument is the replay filename;
//                    the last one given wins
// Unknown flags are rejected with exit code 1, matching flag.Parse's own
// convention for undefined flags (grounded on the teacher's cmd/server
// plain-os.Args-and-flag style, generalized from env-var toggles to a
// full flag set since FastStack is a CLI-first headless engine rather
// than a long-running server).
func ParseArgs(base HostConfig, args []string, out io.Writer) ParseResult {
	fs := flag.NewFlagSet("faststack", flag.ContinueOnError)
	fs.SetOutput(out)

	var help, help2, noINI, noINI2, verbose, veryVerbose bool
	fs.BoolVar(&help, "h", false, "print usage and exit")
	fs.BoolVar(&help2, "help", false, "print usage and exit")
	fs.BoolVar(&noINI, "i", false, "skip loading the INI config file")
	fs.BoolVar(&noINI2, "no-ini", false, "skip loading the INI config file")
	fs.BoolVar(&verbose, "v", false, "set log level to INFO")
	fs.BoolVar(&veryVerbose, "vv", false, "set log level to DEBUG")

	fs.Usage = func() {
		fmt.Fprintln(out, "usage: faststack [-h] [-i] [-v|-vv] [replay-file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ParseResult{ExitCode: 0, Message: "", ShouldRun: false}
		}
		return ParseResult{ExitCode: 1, Message: err.Error(), ShouldRun: false}
	}

	if help || help2 {
		fs.Usage()
		return ParseResult{ExitCode: 0, ShouldRun: false}
	}

	cfg := base
	if noINI || noINI2 {
		cfg.NoINI = true
	}
	switch {
	case veryVerbose:
		cfg.LogLevel = LevelDebug
	case verbose:
		cfg.LogLevel = LevelInfo
	}

	for _, rest := range fs.Args() {
		cfg.ReplayFile = rest
	}

	return ParseResult{Config: cfg, ShouldRun: true}
}
