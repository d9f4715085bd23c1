package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/filematcher/internal/config"
	"github.com/harrison/filematcher/internal/display"
	"github.com/harrison/filematcher/internal/finder"
	"github.com/harrison/filematcher/internal/logger"
)

// NewFindCommand creates the 'filematcher find' command
func NewFindCommand() *cobra.Command {
	var crit criterionFlags

	cmd := &cobra.Command{
		Use:   "find [flags] [root...]",
		Short: "Find files or folders whose name matches a criterion",
		Long: `Scan one or more roots for entries matching a criterion.

Roots are scanned in order; entries within a directory in lexical order.
Only the immediate children of each root are examined unless --recursive
(or --max-depth) is given.

Without --all the first match is printed and the command fails when nothing
matches. With --all every match is printed and an empty result is not an
error.

Examples:
  filematcher find --exact cat.txt --type file assets
  filematcher find --any cat.txt --any dog.txt --all assets
  filematcher find --wildmatch '*.go' --all --recursive .
  filematcher find --criterion criterion.yaml --output json src docs`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, &crit)
		},
		SilenceUsage: true,
	}

	crit.bind(cmd)
	cmd.Flags().Bool("all", false, "Print every match instead of the first")
	cmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().Int("max-depth", 0, "Maximum recursion depth, implies --recursive (0 = unlimited, 1 = roots only)")
	cmd.Flags().StringSlice("exclude", nil, "Directory names never descended into (overrides config)")
	cmd.Flags().Bool("hidden", false, "Descend into directories starting with '.'")
	cmd.Flags().Bool("no-follow", false, "Classify symlinks as themselves instead of their targets")
	cmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.Flags().String("config", "", "Path to config file (default: nearest .filematcher/config.yaml)")

	return cmd
}

func runFind(cmd *cobra.Command, args []string, crit *criterionFlags) error {
	named, err := crit.build(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadFindConfig(cmd)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		roots = cfg.Roots
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	query := finder.Named(named).
		Within(roots...).
		WithOptions(finder.Options{
			Recursive:      cfg.Recursive,
			MaxDepth:       cfg.MaxDepth,
			ExcludeDirs:    cfg.ExcludeDirs,
			IncludeHidden:  cfg.IncludeHidden,
			FollowSymlinks: cfg.FollowSymlinks,
		}).
		WithLogger(log)

	all, _ := cmd.Flags().GetBool("all")
	start := time.Now()
	log.LogSearchStart(named.String(), query.Roots())

	matches, err := search(query, all)
	if err != nil {
		return err
	}
	log.LogSearchComplete(len(matches), time.Since(start))

	if len(matches) == 0 && cfg.Output == display.FormatText {
		display.NoMatches(named.String(), query.Roots(), cfg.Recursive).Display(cmd.ErrOrStderr())
	}

	out := cmd.OutOrStdout()
	return display.WriteResults(out, cfg.Output, display.Results{
		Criterion: named,
		Roots:     query.Roots(),
		Matches:   matches,
	}, display.IsTerminal(out))
}

// search runs find-one or find-all and returns the matches as a list.
func search(query finder.Query, all bool) ([]string, error) {
	if all {
		return query.FindAll()
	}
	match, err := query.Find()
	if err != nil {
		return nil, err
	}
	return []string{match}, nil
}

// loadFindConfig loads the config file (explicit or discovered), applies
// command-line overrides and validates the result.
func loadFindConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadConfig(path)
	} else {
		cfg, _, err = config.Discover(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	var overrides config.Flags
	if flags.Changed("recursive") {
		v, _ := flags.GetBool("recursive")
		overrides.Recursive = &v
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		overrides.MaxDepth = &v
	}
	if flags.Changed("exclude") {
		v, _ := flags.GetStringSlice("exclude")
		overrides.ExcludeDirs = &v
	}
	if flags.Changed("hidden") {
		v, _ := flags.GetBool("hidden")
		overrides.IncludeHidden = &v
	}
	if flags.Changed("no-follow") {
		v, _ := flags.GetBool("no-follow")
		follow := !v
		overrides.FollowSymlinks = &follow
	}
	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		overrides.Output = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
