package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/filematcher/internal/entry"
)

// patternFlag is a name variant that only exists when its capability is
// compiled in.
type patternFlag struct {
	name  string
	usage string
	build func(pattern string) entry.Name
}

var patternFlags []patternFlag

func registerPatternFlag(f patternFlag) {
	patternFlags = append(patternFlags, f)
}

// criterionFlags collects the flags that describe one entry.Named.
type criterionFlags struct {
	exact    string
	any      []string
	file     string
	typ      string
	patterns map[string]*string
}

func (f *criterionFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.exact, "exact", "", "Match names equal to this string")
	flags.StringArrayVar(&f.any, "any", nil, "Match names equal to any of these strings (repeatable)")

	f.patterns = make(map[string]*string, len(patternFlags))
	for _, p := range patternFlags {
		f.patterns[p.name] = flags.String(p.name, "", p.usage)
	}

	flags.StringVarP(&f.file, "criterion", "c", "", "Load the criterion from a YAML or JSON file")
	flags.StringVarP(&f.typ, "type", "t", "any", "Entry type: file, folder or any")

	names := f.sourceFlags()
	cmd.MarkFlagsOneRequired(names...)
	cmd.MarkFlagsMutuallyExclusive(names...)
}

// sourceFlags lists the flags that select the name strategy.
func (f *criterionFlags) sourceFlags() []string {
	names := []string{"exact", "any"}
	for _, p := range patternFlags {
		names = append(names, p.name)
	}
	return append(names, "criterion")
}

// build turns the parsed flags into a criterion. An explicit --type overrides
// the type stored in a criterion file.
func (f *criterionFlags) build(cmd *cobra.Command) (entry.Named, error) {
	typ, err := entry.ParseType(f.typ)
	if err != nil {
		return entry.Named{}, err
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("criterion"):
		named, err := loadCriterion(f.file)
		if err != nil {
			return entry.Named{}, err
		}
		if flags.Changed("type") {
			named = entry.New(named.Name(), typ)
		}
		return named, nil
	case flags.Changed("exact"):
		return entry.New(entry.Exact(f.exact), typ), nil
	case flags.Changed("any"):
		return entry.New(entry.Any(f.any), typ), nil
	}

	for _, p := range patternFlags {
		if flags.Changed(p.name) {
			return entry.New(p.build(*f.patterns[p.name]), typ), nil
		}
	}

	return entry.Named{}, fmt.Errorf("one of --%s is required", strings.Join(f.sourceFlags(), ", --"))
}

// loadCriterion reads a criterion file; ".json" files are decoded as JSON,
// everything else as YAML.
func loadCriterion(path string) (entry.Named, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entry.Named{}, fmt.Errorf("failed to read criterion file: %w", err)
	}

	var named entry.Named
	if strings.EqualFold(filepath.Ext(path), ".json") {
		named, err = entry.DecodeJSON(data)
	} else {
		named, err = entry.DecodeYAML(data)
	}
	if err != nil {
		return entry.Named{}, fmt.Errorf("%s: %w", path, err)
	}
	return named, nil
}
