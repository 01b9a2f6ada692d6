package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/config"
	"github.com/yaklabco/mdblock/pkg/fsutil"
)

// defaultConfigFile is the project configuration file written by init.
const defaultConfigFile = ".mdblock.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .mdblock.yml",
		Long: `Write a commented .mdblock.yml with the default settings to the
current directory.

Examples:
  mdblock init                       Create .mdblock.yml
  mdblock init --force               Overwrite an existing file
  mdblock init --output ci/mdblock.yml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	existed := false
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		existed = true
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, absPath, config.DefaultTemplate(), fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	switch {
	case !written:
		logger.Info("configuration file already up to date", logging.FieldPath, outputPath)
		return nil
	case existed:
		logger.Warn("overwrote existing file", logging.FieldPath, outputPath)
	default:
		logger.Info("created configuration file", logging.FieldPath, outputPath)
	}
	logger.Info("run 'mdblock scan' to classify the Markdown files below this directory")

	return nil
}
