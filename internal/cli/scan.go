package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/configloader"
	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/config"
	"github.com/yaklabco/mdblock/pkg/reporter"
	"github.com/yaklabco/mdblock/pkg/runner"
)

type scanFlags struct {
	format          string
	detectLanguages bool
	followSymlinks  bool
	ignore          []string
	only            []string
	jobs            int
	compact         bool
	noSummary       bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Classify the lines of Markdown files",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: text, table, json, summary (default from config, else text)")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false,
		"guess the language of fences without an info string")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false,
		"follow directory symlinks during discovery")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil,
		"glob patterns to skip (repeatable)")
	cmd.Flags().StringSliceVar(&flags.only, "only", nil,
		"report only these kinds: "+kindList())
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "parallel workers (0 uses every CPU)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the closing summary")

	return cmd
}

const scanLongDescription = `Classify every line of the given Markdown files.

By default, scans all .md and .markdown files in the current directory and
subdirectories. Text lines are omitted from the text format unless requested
with --only.

Examples:
  mdblock scan                          # Scan current directory
  mdblock scan docs/ README.md          # Scan specific paths
  mdblock scan --only fence-open        # List fence openers only
  mdblock scan --format table           # Table of fenced code blocks
  mdblock scan --format json --compact  # Machine-readable output`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	cliCfg, overrides := flags.toConfig(cmd)

	env, err := resolveEnv(cmd, cliCfg, overrides)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(env.cfg.Format))
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}

	only, err := parseKinds(env.cfg.Only)
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}

	opts := runner.OptionsFromConfig(env.cfg, args)
	opts.WorkingDir = env.workDir

	env.logger.Debug("starting scan",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
	)

	result, err := runner.New(nil).Run(env.ctx, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       env.color,
		ShowSummary: !flags.noSummary,
		Compact:     env.cfg.Compact,
		Only:        only,
		WorkingDir:  env.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(env.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return resultError(result)
}

// toConfig maps explicitly set flags onto a config layer. Flags whose false
// or 0 value must win over a config file go into the overrides.
func (f *scanFlags) toConfig(cmd *cobra.Command) (*config.Config, configloader.Overrides) {
	cfg := &config.Config{Compact: f.compact}
	var overrides configloader.Overrides
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("only") {
		cfg.Only = f.only
	}
	if changed("jobs") {
		overrides.Jobs = &f.jobs
	}
	if changed("detect-languages") {
		overrides.DetectLanguages = &f.detectLanguages
	}
	if changed("follow-symlinks") {
		overrides.FollowSymlinks = &f.followSymlinks
	}

	return cfg, overrides
}

// parseKinds converts kind names to classify kinds.
func parseKinds(names []string) ([]classify.Kind, error) {
	if len(names) == 0 {
		return nil, nil
	}

	kinds := make([]classify.Kind, 0, len(names))
	for _, name := range names {
		kind, ok := classify.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown kind %q; valid kinds: %s", name, kindList())
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func kindList() string {
	return strings.Join(classify.KindNames(), ", ")
}
