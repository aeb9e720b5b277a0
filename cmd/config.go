package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajxudir/spmoutdated/pkg/config"
	"github.com/ajxudir/spmoutdated/pkg/errors"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
)

var (
	writeFileFunc = os.WriteFile
	readFileFunc  = os.ReadFile
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long: `Show or create the .spm-outdated.yml configuration file.

Use --config to point --show-effective and --validate at a file other than
.spm-outdated.yml in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .spm-outdated.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .spm-outdated.yml template file
//   - --validate: Validates the configuration file
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the configuration a check would use
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configInitFlag {
		return createConfigTemplate(cmd)
	}

	if configValidateFlag {
		return validateConfigFile(cmd)
	}

	if configShowDefaultsFlag {
		_, _ = fmt.Fprintln(out, "Default configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadConfigFunc(configFlag, ".", loggerFor(cmd))
		if err != nil {
			return err
		}
		rendered, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		source := cfg.Source
		if source == "" {
			source = "built-in defaults"
		}
		_, _ = fmt.Fprintln(out, "Effective configuration:")
		_, _ = fmt.Fprintf(out, "Source: %s\n\n", source)
		_, _ = fmt.Fprint(out, rendered)
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates the file named by --config, or
// .spm-outdated.yml in the current directory.
//
// Returns:
//   - error: ExitError with ExitConfigError when the file is unreadable or invalid
func validateConfigFile(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	configPath := configFlag
	if configPath == "" {
		configPath = config.FileName
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	if err := config.ValidateConfigFile(data); err != nil {
		_, _ = fmt.Fprintf(out, "Configuration validation failed for: %s\n\n", configPath)

		var failures errors.ValidationErrors
		if stderrors.As(err, &failures) {
			for _, f := range failures {
				_, _ = fmt.Fprintf(out, "  ERROR: %s\n", f.Error())
			}
		} else {
			_, _ = fmt.Fprintf(out, "  ERROR: %s\n", err)
		}
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Run 'spm-outdated config --show-defaults' for the list of valid options")
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	_, _ = fmt.Fprintf(out, "Configuration valid: %s\n", configPath)
	return nil
}

// createConfigTemplate writes the configuration template to the current
// directory. An existing file is never overwritten.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate(cmd *cobra.Command) error {
	configPath := filepath.Join(".", config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created configuration template: %s\n", configPath)
	return nil
}
