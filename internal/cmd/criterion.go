package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/filematcher/internal/display"
	"github.com/harrison/filematcher/internal/entry"
	"github.com/harrison/filematcher/internal/filelock"
)

// NewCriterionCommand creates the 'filematcher criterion' command group
func NewCriterionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "criterion",
		Short: "Encode criteria to files and test names against them",
	}

	cmd.AddCommand(NewCriterionEncodeCommand())
	cmd.AddCommand(NewCriterionCheckCommand())

	return cmd
}

// NewCriterionEncodeCommand creates the 'filematcher criterion encode' command
func NewCriterionEncodeCommand() *cobra.Command {
	var crit criterionFlags

	cmd := &cobra.Command{
		Use:   "encode [flags]",
		Short: "Serialize a criterion as YAML or JSON",
		Long: `Build a criterion from flags and print it, or write it to a file.

Writes with --out take a lock on <file>.lock and replace the file atomically,
so concurrent writers never leave a partial criterion behind.

Examples:
  filematcher criterion encode --exact cat.txt --type file
  filematcher criterion encode --any a.txt --any b.txt --format json
  filematcher criterion encode --wildmatch '*.go' --out .filematcher/go.yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			named, err := crit.build(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			data, err := encodeCriterion(named, format)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			timeout, _ := cmd.Flags().GetDuration("lock-timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := filelock.WriteLocked(ctx, out, data); err != nil {
				return fmt.Errorf("failed to write criterion: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote criterion for %s to %s\n", describeType(named.Type()), out)
			return nil
		},
	}

	crit.bind(cmd)
	cmd.Flags().StringP("format", "f", "yaml", "Encoding: yaml or json")
	cmd.Flags().String("out", "", "Write to this file instead of stdout")
	cmd.Flags().Duration("lock-timeout", 10*time.Second, "How long to wait for the file lock")

	return cmd
}

// NewCriterionCheckCommand creates the 'filematcher criterion check' command
func NewCriterionCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <criterion-file> <name>...",
		Short: "Test names against a criterion without touching the filesystem",
		Long: `Apply the name part of a criterion to each given name and report
whether it matches. The entry type is not checked since no file is examined.

Exit code: 0 if every name matches, 1 otherwise`,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			named, err := loadCriterion(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return checkNames(out, named, args[1:], display.IsTerminal(out))
		},
	}

	return cmd
}

func encodeCriterion(named entry.Named, format string) ([]byte, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(named)
		if err != nil {
			return nil, fmt.Errorf("encode criterion as yaml: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(named, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode criterion as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("invalid format %q, must be one of: yaml, json", format)
	}
}

// checkNames prints one verdict per name and fails if any name is rejected.
func checkNames(out io.Writer, named entry.Named, names []string, colored bool) error {
	matcher, err := entry.Compile(named.Name())
	if err != nil {
		return fmt.Errorf("invalid criterion: %w", err)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if colored {
		green.EnableColor()
		red.EnableColor()
	} else {
		green.DisableColor()
		red.DisableColor()
	}

	rejected := 0
	for _, name := range names {
		if matcher.Match(name) {
			fmt.Fprintf(out, "%s  %s\n", green.Sprint("match   "), name)
		} else {
			rejected++
			fmt.Fprintf(out, "%s  %s\n", red.Sprint("no match"), name)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d names did not match %s", rejected, len(names), named)
	}
	return nil
}

func describeType(t entry.Type) string {
	switch t {
	case entry.FileType:
		return "files"
	case entry.FolderType:
		return "folders"
	default:
		return "entries"
	}
}
