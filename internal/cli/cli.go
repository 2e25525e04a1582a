package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/creatures-addons/internal/app"
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

	flagSet := flag.NewFlagSet("addoninstall", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Creatures Exodus Add-on Installer - installs, backs up and uninstalls add-ons
for Creatures 3 and Docking Station.

Usage:
  addoninstall [options]

Add-ons are read from <input_dir>/C3/<add-on>/... and <input_dir>/DS/<add-on>/...

Options:
`)
		flagSet.PrintDefaults()
	}

	var cfg app.Config
	stringFlag(flagSet, &cfg.InputDir, "input_dir", "i", "", "The path to the input directory containing the add-ons to install. (default: current directory)")
	stringFlag(flagSet, &cfg.BackupDir, "backup_dir", "b", "", "The path to the directory where backups of the original game files are stored. (default: ~/Documents/Creatures Patch Backups)")
	stringFlag(flagSet, &cfg.CreaturesDir, "creatures_dir", "c", "", "The path to your Creatures Exodus installation. (default: ~/Documents/Creatures)")
	boolFlag(flagSet, &cfg.SkipBackup, "skip_backup", "s", "Don't create any backups, just install patches and add-ons.")
	boolFlag(flagSet, &cfg.Uninstall, "uninstall", "u", "Uninstall add-ons and restore any original files from backups (if available).")
	flagSet.BoolVar(&cfg.Version, "version", false, "Display the version number.")
	stringFlag(flagSet, &cfg.TablesPath, "tables", "t", "", "Path to an HCL file replacing the built-in filetype and exception tables.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
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
	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// stringFlag binds a long and a short flag name to the same variable.
func stringFlag(fs *flag.FlagSet, p *string, long, short, value, usage string) {
	fs.StringVar(p, long, value, usage)
	fs.StringVar(p, short, value, usage+" (shorthand)")
}

func boolFlag(fs *flag.FlagSet, p *bool, long, short, usage string) {
	fs.BoolVar(p, long, false, usage)
	fs.BoolVar(p, short, false, usage+" (shorthand)")
}
