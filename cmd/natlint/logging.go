package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger builds the stderr logger shared by every command. The level is
// warn, debug with verbose, or whatever --log-level names.
func newLogger(cmd *cobra.Command, verbose bool) (*log.Logger, error) {
	levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	level := log.WarnLevel
	switch {
	case strings.TrimSpace(levelFlag) != "":
		level, err = log.ParseLevel(strings.ToLower(strings.TrimSpace(levelFlag)))
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level value %q: %w", levelFlag, err)
		}
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "natlint",
		Level:  level,
	}), nil
}

// useColor resolves --color for output written to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
