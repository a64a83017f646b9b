package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPixels(w, h int) []byte {
	return make([]byte, w*h*4)
}

// TestAllocateRowWrapsWithinPage checks that Allocate starts a new shelf
// row once a glyph no longer fits the remaining width of the current row,
// without advancing to a new page.
func TestAllocateRowWrapsWithinPage(t *testing.T) {
	p := NewAtlasPacker(512, 512)
	var last AtlasEntry
	for i := 0; i < 5; i++ {
		e, ok := p.Allocate(512, 512, solidPixels(512, 512), 0, 0)
		require.True(t, ok, "allocation %d should succeed", i)
		last = e
	}
	assert.Equal(t, 0, last.Page, "row wrap must stay on the same page")
	assert.Equal(t, 0, last.X, "wrapped row starts back at X=0")
	assert.Equal(t, 512, last.Y, "wrapped row starts at Y == previous row height")
}

// TestAllocatePageWrapsWhenPageFull checks that once a page's shelf rows
// are exhausted, Allocate opens a fresh page rather than overflowing.
func TestAllocatePageWrapsWhenPageFull(t *testing.T) {
	p := NewAtlasPacker(512, 512)
	var last AtlasEntry
	const perPage = 16 // 2048/512 per row * 2048/512 rows
	for i := 0; i < perPage+1; i++ {
		e, ok := p.Allocate(512, 512, solidPixels(512, 512), 0, 0)
		require.True(t, ok, "allocation %d should succeed", i)
		last = e
	}
	assert.Equal(t, 1, last.Page, "page should have wrapped to a second page")
	assert.Equal(t, 0, last.X)
	assert.Equal(t, 0, last.Y)
	assert.Equal(t, 2, p.PageCount())
}

// TestAllocateExhaustionReturnsFalseAtMaxPages checks the 16-page cap:
// once every page is full, Allocate reports failure instead of growing
// without bound.
func TestAllocateExhaustionReturnsFalseAtMaxPages(t *testing.T) {
	// Oversized glyphs (taller than a page) force a fresh page on every
	// call, reaching the maxPages cap quickly without an enormous loop.
	p := NewAtlasPacker(1, pageSize+1)
	pixels := solidPixels(1, pageSize+1)

	succeeded := 0
	for i := 0; i < 64; i++ {
		_, ok := p.Allocate(1, pageSize+1, pixels, 0, 0)
		if !ok {
			break
		}
		succeeded++
	}
	assert.LessOrEqual(t, p.PageCount(), maxPages)
	assert.Equal(t, maxPages, p.PageCount(), "packer should have filled every page before failing")
	assert.Greater(t, succeeded, 0)

	_, ok := p.Allocate(1, pageSize+1, pixels, 0, 0)
	assert.False(t, ok, "allocation past the page cap must fail")
}

// TestRebuildDropsPagesAndResetsCursor checks that Rebuild discards all
// existing pages and starts packing fresh at the new cell metrics.
func TestRebuildDropsPagesAndResetsCursor(t *testing.T) {
	p := NewAtlasPacker(512, 512)
	_, ok := p.Allocate(512, 512, solidPixels(512, 512), 0, 0)
	require.True(t, ok)
	require.Equal(t, 1, p.PageCount())

	p.Rebuild(256, 256)
	assert.Equal(t, 0, p.PageCount(), "Rebuild must drop every page")

	e, ok := p.Allocate(256, 256, solidPixels(256, 256), 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, e.Page)
	assert.Equal(t, 0, e.X)
	assert.Equal(t, 0, e.Y)
}

// TestPageOutOfRangeReturnsNil covers the Page accessor's bounds check.
func TestPageOutOfRangeReturnsNil(t *testing.T) {
	p := NewAtlasPacker(64, 64)
	assert.Nil(t, p.Page(0))
	assert.Nil(t, p.Page(-1))

	p.Allocate(64, 64, solidPixels(64, 64), 0, 0)
	assert.NotNil(t, p.Page(0))
	assert.Nil(t, p.Page(1))
}
