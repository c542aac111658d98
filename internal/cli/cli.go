package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/beamgrid/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is a fully resolved command line.
type Invocation struct {
	Config config.Config
	// InputPath is the field file; "-" reads standard input.
	InputPath string
}

// Parse processes command-line arguments. It returns a populated Invocation,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("beamgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
beamgrid - count the cells a light beam energizes in a mirror field.

Usage:
  beamgrid [options] [FILE]

Arguments:
  FILE
    Path to the field layout. Omit or pass '-' to read standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	workersFlag := flagSet.Int("workers", 0, "Concurrent walks during the search. 0 uses GOMAXPROCS.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	verboseFlag := flagSet.Bool("v", false, "Print the energized map of the default entry.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one FILE argument is accepted"}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// explicit flags win over the file
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workersFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "v":
			cfg.Render = *verboseFlag
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := "-"
	if flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
	}

	inv := &Invocation{Config: cfg, InputPath: path}
	slog.Debug("CLI parser finished successfully.", "config", cfg, "input", path)
	return inv, false, nil
}

// NewLogger builds the process logger described by cfg, writing to w.
func NewLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OpenInput returns the reader for path, or stdin for "-".
// The returned closer is a no-op for stdin.
func OpenInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ExitError{Code: 1, Message: fmt.Sprintf("input file: %v", err)}
	}
	return f, f.Close, nil
}
