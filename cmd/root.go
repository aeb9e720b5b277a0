// Package cmd implements the spm-outdated command-line interface.
//
// The root command checks a Swift package or Xcode project for outdated
// dependencies. The version and config subcommands report build information
// and manage the configuration file.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ajxudir/spmoutdated/pkg/errors"
)

var exitFunc = os.Exit

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "spm-outdated [path]",
	Short: "Find outdated Swift Package Manager dependencies",
	Long: `Compare the versions pinned in Package.resolved against the tags published by
each package repository and list the packages that have newer versions.

path is a package directory, an Xcode project directory, or a Package.resolved
file. It defaults to the current directory.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Outdated packages found while fail_on_outdated is enabled
//   - 2: Fatal failure such as a missing or unreadable lockfile
//   - 3: Configuration or validation error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := errors.GetExitCode(err)
		if code != errors.ExitOutdated {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path (default: .spm-outdated.yml in the target directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
