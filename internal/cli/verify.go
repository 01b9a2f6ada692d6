package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/configloader"
	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/config"
	"github.com/yaklabco/mdblock/pkg/parser/goldmark"
	"github.com/yaklabco/mdblock/pkg/reporter"
	"github.com/yaklabco/mdblock/pkg/runner"
)

type verifyFlags struct {
	flavor  string
	format  string
	ignore  []string
	jobs    int
	compact bool
}

func newVerifyCommand() *cobra.Command {
	flags := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify [paths...]",
		Short: "Cross-check the classifier against goldmark",
		Long: `Parse every file with goldmark and compare its thematic breaks and
fenced code blocks with the classifier's answer.

Differences are printed and the command exits with status 1. Some are
expected: goldmark understands setext headings, container blocks, and tabs
inside rules, while the classifier works line by line at the top level.

Examples:
  mdblock verify                     # Verify current directory
  mdblock verify --flavor gfm docs/  # Use the GFM extension set
  mdblock verify --format json       # Disagreements as JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", "",
		"goldmark flavor: commonmark, gfm (default from config, else commonmark)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil,
		"glob patterns to skip (repeatable)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "parallel workers (0 uses every CPU)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, flags *verifyFlags) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}
	if format != reporter.FormatText && format != reporter.FormatJSON {
		return errors.Join(ErrInvalidUsage,
			fmt.Errorf("verify supports text and json output, not %q", flags.format))
	}

	cliCfg := &config.Config{Compact: flags.compact}
	if cmd.Flags().Changed("flavor") {
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	var overrides configloader.Overrides
	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = &flags.jobs
	}

	env, err := resolveEnv(cmd, cliCfg, overrides)
	if err != nil {
		return err
	}

	opts := runner.OptionsFromConfig(env.cfg, args)
	opts.WorkingDir = env.workDir

	verifier := goldmark.New(string(env.cfg.Flavor))
	env.logger.Debug("starting verify",
		logging.FieldPaths, opts.Paths,
		logging.FieldFlavor, verifier.Flavor(),
	)

	result, err := runner.New(verifier).Run(env.ctx, opts)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       env.color,
		ShowSummary: true,
		Compact:     env.cfg.Compact,
		Verify:      true,
		WorkingDir:  env.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(env.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.Stats.Disagreements > 0 {
		env.logger.Debug("verify found disagreements",
			logging.FieldDisagreements, result.Stats.Disagreements)
	}

	return resultError(result)
}
