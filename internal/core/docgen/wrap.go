package docgen

import "strings"

// MeasureFunc returns the rendered width of a string in some fixed font.
type MeasureFunc func(text string) float64

// WrapText splits text into lines that fit maxWidth using greedy word wrap.
//
// The text is treated as a single paragraph: newlines are normalized to single
// spaces before wrapping. A word is appended to the current line while the line
// plus a separating space still measures within maxWidth; otherwise the line is
// closed and the word starts a new one. A single word wider than maxWidth is
// still placed alone on its own line; there is no character-level splitting or
// hyphenation.
//
// Empty or whitespace-only input produces exactly one empty line, never an empty
// slice, so vertical-space accounting downstream still reserves one line for
// absent text. WrapText is a pure function.
func WrapText(text string, measure MeasureFunc, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	current := words[0]

	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}

	return append(lines, current)
}
