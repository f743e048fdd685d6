package ingest

import (
	"regexp"
	"strings"
)

// reviewBoundary matches a blank line: two or more consecutive newlines.
var reviewBoundary = regexp.MustCompile(`\n{2,}`)

// SplitReviews partitions raw input into review units.
//
// Units are separated by runs of two or more newlines; each unit is trimmed
// and empty units are dropped. CRLF line endings are treated as LF.
// Empty or whitespace-only input yields an empty (nil) slice.
func SplitReviews(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var units []string
	for _, part := range reviewBoundary.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		units = append(units, part)
	}
	return units
}
