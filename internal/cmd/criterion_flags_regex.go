//go:build !filematcher_noregex

package cmd

import "github.com/harrison/filematcher/internal/entry"

func init() {
	registerPatternFlag(patternFlag{
		name:  "regex",
		usage: "Match names against a regular expression (unanchored; use ^...$ for whole names)",
		build: func(pattern string) entry.Name { return entry.Regex(pattern) },
	})
}
