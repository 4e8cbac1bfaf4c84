package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/iomapper/internal/app"
	"github.com/vk/iomapper/internal/hcl"
)

// Process exit codes.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitDiagnostics = 3
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("iomapper", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
iomapper - generates Global.typ, Global.var and IoMap.iom from an I/O module
type catalog and the hardware tree.

Usage:
  iomapper [options]

Run without options from the IOmapper directory of a CPU configuration to use
the default paths.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	cFlag := flagSet.String("c", "", "Path to an HCL settings file (shorthand).")
	initFlag := flagSet.String("init", "", "Write a settings file with the default values to this path and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict", false, "Exit with code 3 when the run reports diagnostics.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	if *initFlag != "" {
		if err := hcl.WriteDefaults(*initFlag, output); err != nil {
			return nil, false, &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		return nil, true, nil
	}

	settingsPath := *configFlag
	if settingsPath == "" {
		settingsPath = *cFlag
	}
	slog.Debug("Settings path determined.", "path", settingsPath)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SettingsPath: settingsPath,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Strict:       *strictFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
