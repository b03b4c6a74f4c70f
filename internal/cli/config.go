package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/unigrid/internal/configloader"
	"github.com/yaklabco/unigrid/internal/logging"
	"github.com/yaklabco/unigrid/pkg/config"
)

// errLoadConfig wraps configuration loading failures.
var errLoadConfig = errors.New("failed to load configuration")

// loadConfig resolves the effective configuration for cmd, layering cliCfg
// on top of files and the environment.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errLoadConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldLayers, loadResult.LoadedFrom)
	}

	return loadResult, nil
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration unigrid would use in the current directory,
after merging system, user, project and explicit config files with
UNIGRID_* environment variables.`,
		Example: `unigrid config         # Print the effective configuration
unigrid config paths   # List the config files in use
unigrid config env     # List supported environment variables`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "List the configuration files in precedence order",
		Args:  cobra.NoArgs,
		RunE:  runConfigPaths,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Args:  cobra.NoArgs,
		RunE:  runConfigEnv,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	loadResult, err := loadConfig(cmd.Context(), cmd, nil)
	if err != nil {
		return err
	}

	header := "# effective unigrid configuration"
	for _, layer := range loadResult.Paths.Layers() {
		header += fmt.Sprintf("\n# %s: %s", layer[0], layer[1])
	}

	content, err := loadResult.Config.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(content); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

func runConfigPaths(cmd *cobra.Command, _ []string) error {
	loadResult, err := loadConfig(cmd.Context(), cmd, nil)
	if err != nil {
		return err
	}

	var out strings.Builder
	layers := loadResult.Paths.Layers()
	if len(layers) == 0 {
		out.WriteString("no configuration files found; using defaults\n")
	}
	for _, layer := range layers {
		fmt.Fprintf(&out, "%-8s  %s\n", layer[0], layer[1])
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), out.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

func runConfigEnv(cmd *cobra.Command, _ []string) error {
	vars := configloader.ListEnvVars()

	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	var out strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&out, "%-*s  %s\n", width, v.Name, v.Description)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), out.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
