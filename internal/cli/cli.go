// Package cli implements the gensudoku command-line interface.
//
// This package provides commands for generating puzzles with a guaranteed
// unique solution, solving puzzles from files or stdin, serving the HTTP
// API, and playing puzzles interactively in the terminal. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gensudoku/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "gensudoku"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger. Defaults are read
// from the optional config file; a missing or broken file falls back to
// built-in defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}

	path, err := configPath()
	if err != nil {
		return c
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		c.Logger.Warn("ignoring config file", "path", path, "error", err)
		return c
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gensudoku",
		Short:        "Gensudoku generates and solves sudoku puzzles",
		Long:         `Gensudoku is a CLI tool for generating sudoku puzzles with a guaranteed unique solution, solving existing puzzles, and serving both over an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the config directory using XDG standard
// (~/.config/gensudoku/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
