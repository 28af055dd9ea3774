package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"natlint/internal/config"
	"natlint/internal/diagfmt"
	"natlint/internal/driver"
	"natlint/internal/observ"
	"natlint/internal/version"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [paths...]",
	Short: "Lint the NatSpec comments of Solidity files",
	Long: `Lint every Solidity file below the given paths (or --root) and report
the missing, misplaced or malformed NatSpec comments. The exit status is 1
when any violation is found or any file cannot be linted.`,
	RunE: runLint,
}

// init registers the flags of the run command.
func init() {
	runCmd.Flags().String("root", ".", "project root; display paths and excludes are relative to it")
	runCmd.Flags().StringSliceP("include", "i", nil, "glob patterns of files to lint (default **/*.sol)")
	runCmd.Flags().StringSliceP("exclude", "e", nil, "glob patterns of files to skip")
	runCmd.Flags().StringP("config", "c", config.DefaultFileName, "path to the configuration file")
	runCmd.Flags().BoolP("verbose", "v", false, "log debug information")
	runCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	runCmd.Flags().Int("jobs", 0, "max files linted in parallel (0=auto)")
	runCmd.Flags().String("ui", "auto", "show progress UI (auto|on|off)")
	runCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	runCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	runCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

type runFlags struct {
	root       string
	include    []string
	exclude    []string
	configPath string
	verbose    bool
	format     diagfmt.Format
	jobs       int
	ui         uiMode
	cache      bool
	timings    bool
	fullPath   bool
}

func readRunFlags(cmd *cobra.Command) (runFlags, error) {
	var (
		f   runFlags
		err error
	)
	if f.root, err = cmd.Flags().GetString("root"); err != nil {
		return f, fmt.Errorf("failed to get root flag: %w", err)
	}
	if f.include, err = cmd.Flags().GetStringSlice("include"); err != nil {
		return f, fmt.Errorf("failed to get include flag: %w", err)
	}
	if f.exclude, err = cmd.Flags().GetStringSlice("exclude"); err != nil {
		return f, fmt.Errorf("failed to get exclude flag: %w", err)
	}
	if f.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return f, fmt.Errorf("failed to get config flag: %w", err)
	}
	if f.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return f, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format, err = diagfmt.ParseFormat(formatStr); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiStr); err != nil {
		return f, err
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	return f, nil
}

// runLint executes the run command. Violations and unreadable files end
// the process with status 1 after the report is written.
func runLint(cmd *cobra.Command, args []string) error {
	flags, err := readRunFlags(cmd)
	if err != nil {
		return err
	}
	session, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	exitCode, err := lintAndReport(cmd, args, flags)
	if stopErr := session.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "failed to write profiles: %v\n", stopErr)
	}
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// lintAndReport runs the linter and writes the report. The exit code is 1
// when the result has violations or file errors.
func lintAndReport(cmd *cobra.Command, args []string, flags runFlags) (int, error) {
	logger, err := newLogger(cmd, flags.verbose)
	if err != nil {
		return 0, err
	}
	colored, err := useColor(cmd, os.Stdout)
	if err != nil {
		return 0, err
	}

	cfgPath := flags.configPath
	if !cmd.Flags().Changed("config") {
		found, ok, err := config.Find(flags.root)
		if err != nil {
			return 0, fmt.Errorf("failed to locate config: %w", err)
		}
		if ok {
			cfgPath = found
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Path == "" {
		logger.Debug("no configuration file, using defaults", "path", cfgPath)
	} else {
		logger.Debug("loaded configuration", "path", cfg.Path, "rules", len(cfg.Active()))
	}

	timer := observ.NewTimer()
	opts := driver.Options{
		Root:    flags.root,
		Paths:   args,
		Include: flags.include,
		Exclude: flags.exclude,
		Config:  cfg,
		Jobs:    flags.jobs,
		Logger:  logger,
		Timer:   timer,
	}
	if flags.cache {
		cache, err := driver.OpenCache("natlint")
		if err != nil {
			logger.Warn("disk cache disabled", "err", err)
		} else {
			logger.Debug("using disk cache", "dir", cache.Dir())
			opts.Cache = cache
		}
	}

	machineOutput := flags.format == diagfmt.FormatJSON || flags.format == diagfmt.FormatSARIF
	var res *driver.Result
	if shouldUseTUI(flags.ui, machineOutput) {
		res, err = runWithUI(cmd.Context(), "natlint", opts)
	} else {
		res, err = driver.Run(cmd.Context(), opts)
	}
	if err != nil {
		return 0, fmt.Errorf("lint failed: %w", err)
	}

	if err := writeReport(cmd, res, flags, colored); err != nil {
		return 0, err
	}
	if flags.timings {
		if err := printTimings(os.Stderr, timer, false); err != nil {
			return 0, err
		}
	}
	if res.Failed() {
		return 1, nil
	}
	return 0, nil
}

func writeReport(cmd *cobra.Command, res *driver.Result, flags runFlags, colored bool) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case diagfmt.FormatPretty:
		return diagfmt.Pretty(out, res, diagfmt.PrettyOpts{
			Color:           colored,
			PathMode:        pathMode,
			Context:         0,
			ShowDescription: flags.verbose,
			Summary:         !quiet,
		})
	case diagfmt.FormatShort:
		return diagfmt.Short(out, res, pathMode)
	case diagfmt.FormatJSON:
		return diagfmt.JSON(out, res, diagfmt.JSONOpts{PathMode: pathMode, IncludeSource: flags.verbose})
	case diagfmt.FormatSARIF:
		return diagfmt.Sarif(out, res, diagfmt.SarifRunMeta{
			ToolName:       "natlint",
			ToolVersion:    strings.TrimSpace(version.Version),
			InvocationArgs: os.Args[1:],
		})
	default:
		return fmt.Errorf("unknown format: %s", flags.format)
	}
}
