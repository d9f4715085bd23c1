package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filematcher
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filematcher",
		Short: "Find files and folders by name",
		Long: `filematcher looks up files and folders whose names match a criterion.

A criterion pairs a name strategy (exact, any-of, regular expression or
wildcard) with an entry type (file, folder or any). Criteria can be given as
flags or loaded from YAML/JSON files written by 'filematcher criterion encode'.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewCriterionCommand())

	return cmd
}
