package docgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"courierdocs/internal/core/docgen"
)

// charWidth measures every character as 6pt, which makes expected line breaks
// easy to compute by hand.
func charWidth(text string) float64 {
	return float64(len(text)) * 6
}

func TestWrapText_FitsOnSingleLine(t *testing.T) {
	lines := docgen.WrapText("small box", charWidth, 100)

	assert.Equal(t, []string{"small box"}, lines)
}

func TestWrapText_BreaksGreedily(t *testing.T) {
	// 10 chars per line at width 60.
	lines := docgen.WrapText("one two three four", charWidth, 60)

	assert.Equal(t, []string{"one two", "three four"}, lines)
}

func TestWrapText_EmptyInputProducesOneEmptyLine(t *testing.T) {
	assert.Equal(t, []string{""}, docgen.WrapText("", charWidth, 100))
	assert.Equal(t, []string{""}, docgen.WrapText("   \n\t ", charWidth, 100))
}

func TestWrapText_NormalizesNewlinesToSpaces(t *testing.T) {
	lines := docgen.WrapText("22 Oak Ave\nDurban\n4001", charWidth, 500)

	assert.Equal(t, []string{"22 Oak Ave Durban 4001"}, lines)
}

func TestWrapText_OverwideWordGetsItsOwnLine(t *testing.T) {
	lines := docgen.WrapText("a pneumatically-actuated b", charWidth, 30)

	assert.Equal(t, []string{"a", "pneumatically-actuated", "b"}, lines)
}

func TestWrapText_EveryLineFitsUnlessSingleWord(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the riverbank"
	maxWidth := 80.0

	for _, line := range docgen.WrapText(text, charWidth, maxWidth) {
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, charWidth(line), maxWidth)
		}
	}
}
