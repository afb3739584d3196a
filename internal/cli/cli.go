package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/packspec/internal/app"
)

// DefaultSpecPath is the spec file used when none is given on the command line.
const DefaultSpecPath = "packspec.spec"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("packspec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
packspec - resolves a mobile packaging spec for one build profile.

Usage:
  packspec [options] [SPEC_PATH]

Arguments:
  SPEC_PATH
    Path to the packaging spec file. Defaults to packspec.spec.

Options:
`)
		flagSet.PrintDefaults()
	}

	specFlag := flagSet.String("spec", "", "Path to the packaging spec file.")
	sFlag := flagSet.String("s", "", "Path to the packaging spec file (shorthand).")
	profileFlag := flagSet.String("profile", "", "Build profile to resolve. Empty resolves the base configuration.")
	pFlag := flagSet.String("p", "", "Build profile to resolve (shorthand).")
	rootFlag := flagSet.String("root", "", "File-selection root. Overrides the spec's source.dir.")
	outputFlag := flagSet.String("output", "spec", "Resolved-config output format. Options: 'spec' or 'yaml'.")
	oFlag := flagSet.String("o", "", "Resolved-config output format (shorthand).")
	filesFlag := flagSet.Bool("files", false, "Print the selected source file list instead of the resolved config.")
	listProfilesFlag := flagSet.Bool("list-profiles", false, "Print the profile names the spec mentions.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := DefaultSpecPath
	if *specFlag != "" {
		path = *specFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Spec path determined.", "path", path)

	profile := *profileFlag
	if profile == "" {
		profile = *pFlag
	}

	outputFormat := strings.ToLower(*outputFlag)
	if *oFlag != "" {
		outputFormat = strings.ToLower(*oFlag)
	}
	if outputFormat != app.OutputSpec && outputFormat != app.OutputYAML {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'spec' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SpecPath:     path,
		Profile:      profile,
		Root:         *rootFlag,
		Output:       outputFormat,
		ListFiles:    *filesFlag,
		ListProfiles: *listProfilesFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
