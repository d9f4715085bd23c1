//go:build !filematcher_nowildmatch

package cmd

import "github.com/harrison/filematcher/internal/entry"

func init() {
	registerPatternFlag(patternFlag{
		name:  "wildmatch",
		usage: "Match whole names against a wildcard pattern (only * and ? are special)",
		build: func(pattern string) entry.Name { return entry.Wildmatch(pattern) },
	})
}
