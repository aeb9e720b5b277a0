package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajxudir/spmoutdated/pkg/config"
	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/lockfile"
	"github.com/ajxudir/spmoutdated/pkg/manifest"
	"github.com/ajxudir/spmoutdated/pkg/outdated"
	"github.com/ajxudir/spmoutdated/pkg/output"
	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/preflight"
	"github.com/ajxudir/spmoutdated/pkg/tags"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

var (
	ignorePrereleaseFlag bool
	onlyMajorFlag        bool
	ignoreIndirectFlag   bool
	failOnOutdatedFlag   bool
	formatFlag           string
	concurrencyFlag      int
	timeoutFlag          int
)

var (
	loadConfigFunc  = config.LoadConfig
	preflightFunc   = preflight.ValidateCommand
	writeResultFunc = output.WriteResult
	isTerminalFunc  = isTerminal
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&ignorePrereleaseFlag, "ignore-prerelease", false, "Ignore pre-release versions such as 6.0.0-beta.1")
	flags.BoolVar(&onlyMajorFlag, "only-major-updates", false, "Only report packages with a newer major version")
	flags.BoolVar(&ignoreIndirectFlag, "ignore-indirect-packages", false, "Only check packages declared in Package.swift or the Xcode project")
	flags.BoolVar(&failOnOutdatedFlag, "fail-on-outdated", false, "Exit with status 1 when outdated packages are found")
	flags.StringVarP(&formatFlag, "format", "f", "table", "Output format: table, markdown, json, xml, csv, xcode")
	flags.IntVar(&concurrencyFlag, "concurrency", outdated.DefaultConcurrency, "Number of repositories queried in parallel")
	flags.IntVar(&timeoutFlag, "timeout", 60, "Timeout in seconds for each repository query, 0 disables it")
}

// runCheck executes the outdated check.
//
// It performs the following operations:
//   - Step 1: Loads the configuration and applies explicitly set flags over it
//   - Step 2: Locates and loads Package.resolved
//   - Step 3: Drops ignored packages and, if requested, indirect packages
//   - Step 4: Checks that the tag-listing command is installed
//   - Step 5: Queries every repository for tags and classifies each package
//   - Step 6: Writes the report in the selected format
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional target path
//
// Returns:
//   - error: ExitError with the appropriate code on failure, or when outdated
//     packages are found while fail_on_outdated is enabled
func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	workDir := projectDir(target)

	logger := verbose.New(cmd.ErrOrStderr(), verboseFlag)

	cfg, err := loadConfigFunc(configFlag, workDir, logger)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	lockPath, err := lockfile.Locate(target)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	pins, err := lockfile.Load(lockPath, logger)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	pins = outdated.FilterIgnored(pins, cfg.Ignore, logger)
	if cfg.IgnoreIndirectPackages {
		pins = outdated.FilterDirect(pins, manifest.DirectDependencies(workDir, logger), logger)
	}

	if hasResolved(pins) {
		if err := preflightFunc(cfg.GitCommand, logger); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
	}

	refs := &tags.GitRefLister{
		Command:        cfg.GitCommand,
		TimeoutSeconds: cfg.TimeoutSeconds,
		Logger:         logger,
	}
	opts := outdated.Options{
		IgnorePrerelease: cfg.IgnorePrerelease,
		OnlyMajorUpdates: cfg.OnlyMajorUpdates,
		Concurrency:      cfg.Concurrency,
		Logger:           logger,
	}

	progress := newProgress(cmd.ErrOrStderr(), format, pins)
	if progress != nil {
		opts.OnChecked = func(pin.Pin) { progress.Increment() }
	}
	result := outdated.Collect(cmd.Context(), tags.NewDiscoverer(refs, logger), pins, opts)
	if progress != nil {
		progress.Clear()
	}
	// Lookups fail once the run is cancelled, so the partial result would
	// misreport every pin.
	if err := cmd.Context().Err(); err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("check interrupted: %w", err))
	}

	if err := writeResultFunc(cmd.OutOrStdout(), format, result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.FailOnOutdated && result.HasOutdated() {
		logger.Debug("exiting with outdated status", "outdated", len(result.Outdated))
		return errors.NewExitErrorf(errors.ExitOutdated, "%d outdated package(s)", len(result.Outdated))
	}
	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("ignore-prerelease") {
		cfg.IgnorePrerelease = ignorePrereleaseFlag
	}
	if flags.Changed("only-major-updates") {
		cfg.OnlyMajorUpdates = onlyMajorFlag
	}
	if flags.Changed("ignore-indirect-packages") {
		cfg.IgnoreIndirectPackages = ignoreIndirectFlag
	}
	if flags.Changed("fail-on-outdated") {
		cfg.FailOnOutdated = failOnOutdatedFlag
	}
	if flags.Changed("format") {
		cfg.Format = formatFlag
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrencyFlag
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = timeoutFlag
	}
}

// projectDir returns the directory holding the project files for target.
// A Package.resolved inside an Xcode workspace maps back to the directory
// that contains the workspace or project bundle.
func projectDir(target string) string {
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return target
	}

	dir := filepath.Dir(target)
	for d := dir; ; {
		parent := filepath.Dir(d)
		switch filepath.Ext(d) {
		case ".xcodeproj":
			return parent
		case ".xcworkspace":
			// project.xcworkspace lives inside the .xcodeproj bundle
			if filepath.Ext(parent) != ".xcodeproj" {
				return parent
			}
		}
		if parent == d {
			return dir
		}
		d = parent
	}
}

// newProgress returns a progress indicator for interactive table and
// markdown runs, or nil when progress output would pollute the result.
func newProgress(w io.Writer, format output.Format, pins []pin.Pin) *output.Progress {
	if verboseFlag || output.IsStructuredFormat(format) || format == output.FormatXcode || !isTerminalFunc(w) {
		return nil
	}
	total := 0
	for _, p := range pins {
		if p.HasResolvedVersion() {
			total++
		}
	}
	if total == 0 {
		return nil
	}
	return output.NewProgress(w, total, "Checking packages")
}

func hasResolved(pins []pin.Pin) bool {
	for _, p := range pins {
		if p.HasResolvedVersion() {
			return true
		}
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// loggerFor is used by subcommands that do not run a check.
func loggerFor(cmd *cobra.Command) *log.Logger {
	return verbose.New(cmd.ErrOrStderr(), verboseFlag)
}
