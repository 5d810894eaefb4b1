package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkerShortTextIsOneChunk(t *testing.T) {
	c := NewChunker(500, 50)
	chunks, err := c.Split("Acme earned $5B in 2025.")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Acme earned $5B in 2025.", chunks[0])
}

func TestChunkerSplitsLongTextWithinSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("The quick brown fox jumps over the lazy dog near the riverbank. ")
	}
	text := strings.TrimSpace(b.String())

	const size, overlap = 200, 40
	c := NewChunker(size, overlap)
	chunks, err := c.Split(text)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
		assert.LessOrEqual(t, len(chunk), size)
	}

	// trailing content is never dropped
	assert.Contains(t, chunks[len(chunks)-1], "riverbank")

	// overlap duplicates content between consecutive windows
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	assert.Greater(t, total, len(text)-len(chunks)*overlap)
}

func TestChunkerKeepsAllContent(t *testing.T) {
	text := "First paragraph about the company history.\n\nSecond paragraph about revenue and growth.\n\nThird paragraph about leadership changes."
	c := NewChunker(60, 10)

	chunks, err := c.Split(text)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	joined := strings.Join(chunks, " ")
	for _, word := range strings.Fields(strings.ReplaceAll(text, "\n", " ")) {
		assert.Contains(t, joined, word)
	}
}

func TestChunkerEmptyInput(t *testing.T) {
	c := NewChunker(500, 50)

	chunks, err := c.Split("")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	chunks, err = c.Split("   \n\n  ")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
