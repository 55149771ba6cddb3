// Package cli implements the nwsim command line.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwsim/internal/config"
	"github.com/katalvlaran/nwsim/internal/output"
	"github.com/katalvlaran/nwsim/metric"
)

var (
	versionStr = "dev"
	commitStr  = "none"
	dateStr    = "unknown"
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	format     string
	color      string

	gap      float64
	match    float64
	mismatch float64
	table    string
	memory   string
	simplify []string
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nwsim",
		Short: "Needleman-Wunsch string similarity",
		Long: `nwsim scores how similar two strings are with the Needleman-Wunsch
global alignment algorithm. Scores lie in [0, 1]; 1 means identical.

Costs are read from .nwsim.yaml (or --config) and may be overridden
with flags.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: ./"+config.FileName+")")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.format, "format", "", "Output format: text, json")
	flags.StringVar(&opts.color, "color", "", "Color mode: auto, always, never")
	flags.Float64Var(&opts.gap, "gap", 0, "Gap cost (default -2)")
	flags.Float64Var(&opts.match, "match", 0, "Match cost (default 0)")
	flags.Float64Var(&opts.mismatch, "mismatch", 0, "Mismatch cost (default -1)")
	flags.StringVar(&opts.table, "table", "", "Substitution table YAML file")
	flags.StringVar(&opts.memory, "memory", "", "Matrix storage: full, two-rows")
	flags.StringSliceVar(&opts.simplify, "simplify", nil, "Input simplifiers: lower, fold, nfc, space")

	cmd.AddCommand(
		newCompareCmd(opts),
		newBestCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// session is everything a command needs after flags and config are resolved.
type session struct {
	cfg      *config.Config
	logger   hclog.Logger
	metric   metric.StringMetric
	renderer output.Renderer
}

// newSession loads the config, applies flag overrides and builds the metric.
func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	level := hclog.LevelFromString(opts.logLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid --log-level value: %s", opts.logLevel)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "nwsim",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if path := cfg.ConfigPath(); path != "" {
		logger.Debug("loaded config", "path", path)
	}
	applyFlags(cmd, opts, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	m, err := cfg.Metric(logger)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		metric:   m,
		renderer: output.NewRenderer(output.Format(cfg.Output.Format), colorEnabled(cfg.Output.Color)),
	}, nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("gap") {
		cfg.Gap = &opts.gap
	}
	if flags.Changed("match") {
		cfg.SetMatch(opts.match)
	}
	if flags.Changed("mismatch") {
		cfg.SetMismatch(opts.mismatch)
	}
	if flags.Changed("table") {
		// Flag paths are relative to the working directory, not the config file.
		table := opts.table
		if abs, err := filepath.Abs(table); err == nil && table != "" {
			table = abs
		}
		cfg.Substitution.Table = table
	}
	if flags.Changed("memory") {
		cfg.Memory = opts.memory
	}
	if flags.Changed("simplify") {
		cfg.Simplify = opts.simplify
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
}

// colorEnabled resolves a color mode; "auto" follows terminal detection.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}
