package generator

import "passgen/internal/charset"

// maxSymbolRun is the longest run of consecutive symbols Readable keeps.
const maxSymbolRun = 2

// Readable collapses every run of three or more consecutive symbol characters
// down to its first two. The result can be shorter than the input; callers
// must not pad it back to the requested length.
func Readable(s string) string {
	out := make([]rune, 0, len(s))
	run := 0
	for _, r := range s {
		if !charset.IsSymbol(r) {
			run = 0
			out = append(out, r)

			continue
		}

		run++
		if run <= maxSymbolRun {
			out = append(out, r)
		}
	}

	return string(out)
}
