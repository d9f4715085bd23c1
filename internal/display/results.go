package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/harrison/filematcher/internal/entry"
)

// Output formats accepted by WriteResults.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Results is the outcome of one search.
type Results struct {
	Criterion entry.Named `json:"criterion" yaml:"criterion"`
	Roots     []string    `json:"roots" yaml:"roots"`
	Matches   []string    `json:"matches" yaml:"matches"`
}

// WriteResults renders res to out in the given format. colored only affects
// text output.
func WriteResults(out io.Writer, format string, res Results, colored bool) error {
	if res.Matches == nil {
		res.Matches = []string{}
	}

	switch format {
	case FormatText, "":
		c := color.New(color.FgGreen)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		for _, m := range res.Matches {
			if _, err := fmt.Fprintln(out, c.Sprint(m)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode results as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode results as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, must be one of: text, json, yaml", format)
	}
}
