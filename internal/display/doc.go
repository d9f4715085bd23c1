// Package display renders search results and user-facing warnings for the
// filematcher CLI.
//
// # Results
//
// WriteResults prints the matches of a search in one of the supported output
// formats:
//
//	res := display.Results{Criterion: named, Roots: roots, Matches: paths}
//	if err := display.WriteResults(os.Stdout, display.FormatJSON, res, false); err != nil {
//	    return err
//	}
//
// Text output is one path per line. JSON and YAML carry the criterion in its
// serialized form, the roots searched and the matches.
//
// # Warnings
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "No entry matched",
//	    Message:    `File named Exact("cat.txt")`,
//	    Paths:      []string{"assets"},
//	    Suggestion: "Use --recursive to search subdirectories",
//	}
//	warning.Display(os.Stderr)
//
// Warnings are yellow when written to a terminal and plain otherwise.
package display
