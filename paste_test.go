package termcore

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodePasteNormalizesCRLF is spec.md §8 property 9: CRLF sequences
// normalize to a bare CR, while standalone CR is left untouched.
func TestEncodePasteNormalizesCRLF(t *testing.T) {
	mode := DefaultModeFlags()
	chunks := EncodePaste("line1\r\nline2\rline3\n", mode)
	require.Len(t, chunks, 1)
	assert.Equal(t, "line1\rline2\rline3\n", string(chunks[0]))
}

// TestEncodePasteBracketsWhenModeEnabled checks the bpStart/bpEnd wrapping
// only happens under DECSET 2004.
func TestEncodePasteBracketsWhenModeEnabled(t *testing.T) {
	mode := DefaultModeFlags()
	mode.BracketedPaste = true
	chunks := EncodePaste("hi", mode)
	require.Len(t, chunks, 1)
	assert.Equal(t, "\x1b[200~hi\x1b[201~", string(chunks[0]))

	mode.BracketedPaste = false
	chunks = EncodePaste("hi", mode)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hi", string(chunks[0]))
}

// TestEncodePasteChunksWithoutSplittingUTF8Scalars is spec.md §8 property
// 9's UTF-8-safe cut-point requirement: a payload larger than the chunk
// limit is split only at scalar boundaries, and bracket markers land only
// on the first/last chunk.
func TestEncodePasteChunksWithoutSplittingUTF8Scalars(t *testing.T) {
	// 中 is a 3-byte UTF-8 scalar; repeating it past the 4096-byte chunk
	// limit forces a cut that must not land mid-scalar.
	text := strings.Repeat("中", 2000) // 6000 bytes total
	mode := DefaultModeFlags()
	mode.BracketedPaste = true

	chunks := EncodePaste(text, mode)
	require.True(t, len(chunks) >= 2, "expected payload to split into multiple chunks")

	assert.True(t, bytes.HasPrefix(chunks[0], []byte(bpStart)))
	assert.True(t, bytes.HasSuffix(chunks[len(chunks)-1], []byte(bpEnd)))

	var reassembled []byte
	for i, c := range chunks {
		c = bytes.TrimPrefix(c, []byte(bpStart))
		if i == len(chunks)-1 {
			c = bytes.TrimSuffix(c, []byte(bpEnd))
		}
		reassembled = append(reassembled, c...)
		assert.True(t, isValidUTF8(c), "chunk %d is not valid standalone UTF-8: %x", i, c)
	}
	assert.Equal(t, text, string(reassembled))
}

func isValidUTF8(b []byte) bool {
	return strings.ToValidUTF8(string(b), "�") == string(b)
}

// TestEncodePasteEmptyInputYieldsSingleChunk guards the degenerate empty
// case: EncodePaste must not return zero chunks (an upstream writer looping
// over chunks would otherwise silently send nothing, including no bracket
// markers, for an empty clipboard).
func TestEncodePasteEmptyInputYieldsSingleChunk(t *testing.T) {
	mode := DefaultModeFlags()
	mode.BracketedPaste = true
	chunks := EncodePaste("", mode)
	require.Len(t, chunks, 1)
	assert.Equal(t, "\x1b[200~\x1b[201~", string(chunks[0]))
}
