package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/configloader"
	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/config"
)

// commandEnv is the resolved environment shared by scan and verify.
type commandEnv struct {
	ctx     context.Context //nolint:containedctx // Lives for one command invocation.
	logger  *log.Logger
	workDir string
	color   string
	cfg     *config.Config
}

// resolveEnv loads configuration with cliCfg and overrides as the
// highest-precedence layers and attaches the default logger to the command
// context.
func resolveEnv(cmd *cobra.Command, cliCfg *config.Config, overrides configloader.Overrides) (*commandEnv, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Persistent flags from the root command.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		CLIOverrides: overrides,
	})
	if err != nil {
		return nil, errors.Join(ErrConfigLoad, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFormat, cfg.Format,
		logging.FieldDetect, cfg.DetectLanguages,
		logging.FieldJobs, cfg.Jobs,
	)

	return &commandEnv{
		ctx:     ctx,
		logger:  logger,
		workDir: workDir,
		color:   colorMode,
		cfg:     cfg,
	}, nil
}
