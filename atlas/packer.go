// Package atlas implements the AtlasPacker subsystem (spec.md §4.10): a
// multi-page RGBA8 glyph atlas using row-major shelf packing, with no
// defragmentation — a full Rebuild is the only way to reclaim space.
package atlas

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	pageSize = 2048
	maxPages = 16
)

// AtlasEntry locates a packed glyph bitmap within the atlas.
type AtlasEntry struct {
	Page               int
	X, Y               int
	Width, Height      int
	BearingX, BearingY int
}

// AtlasPacker packs glyph bitmaps into fixed 2048x2048 RGBA8 pages.
type AtlasPacker struct {
	pages                  []*image.RGBA
	cellWidth, cellHeight  int
	nextX, nextY, rowHeight int
}

// NewAtlasPacker creates an empty packer sized for the given cell metrics;
// rowHeight starts at cellHeight so the first shelf matches a normal glyph
// row before any taller glyph (e.g. a box-drawing ligature) grows it.
func NewAtlasPacker(cellWidth, cellHeight int) *AtlasPacker {
	return &AtlasPacker{cellWidth: cellWidth, cellHeight: cellHeight, rowHeight: cellHeight}
}

func (p *AtlasPacker) allocatePage() bool {
	if len(p.pages) >= maxPages {
		return false
	}
	p.pages = append(p.pages, image.NewRGBA(image.Rect(0, 0, pageSize, pageSize)))
	p.nextX, p.nextY, p.rowHeight = 0, 0, p.cellHeight
	return true
}

// Allocate places a w x h RGBA8 bitmap (row-major, 4 bytes/px, len ==
// w*h*4) at the current packing cursor, starting a new shelf row or page
// as needed (spec.md §4.10's exact overflow order: row first, then page).
// Returns false once the atlas is full; the caller is expected to Rebuild
// before total exhaustion rather than retry.
func (p *AtlasPacker) Allocate(w, h int, pixels []byte, bearingX, bearingY int) (AtlasEntry, bool) {
	if len(p.pages) == 0 {
		if !p.allocatePage() {
			return AtlasEntry{}, false
		}
	}
	if p.nextX+w > pageSize {
		p.nextX = 0
		p.nextY += p.rowHeight
		p.rowHeight = p.cellHeight
	}
	if p.nextY+h > pageSize {
		if !p.allocatePage() {
			return AtlasEntry{}, false
		}
	}

	pageIdx := len(p.pages) - 1
	page := p.pages[pageIdx]
	src := &image.RGBA{Pix: pixels, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	dstRect := image.Rect(p.nextX, p.nextY, p.nextX+w, p.nextY+h)
	draw.Draw(page, dstRect, src, image.Point{}, draw.Src)

	entry := AtlasEntry{
		Page: pageIdx, X: p.nextX, Y: p.nextY,
		Width: w, Height: h,
		BearingX: bearingX, BearingY: bearingY,
	}

	p.nextX += w
	if h > p.rowHeight {
		p.rowHeight = h
	}
	return entry, true
}

// ScaleGlyph resamples a cached glyph bitmap to exactly w x h using a
// Catmull-Rom filter. It exists for the case a Rebuild changes cell
// metrics (a font-size/DPI change) and the caller would rather rescale an
// already-rasterized glyph than go back to the font for a fresh raster;
// glyphs rasterized fresh for the new metrics should just call Allocate
// directly and skip this.
func ScaleGlyph(src *image.RGBA, w, h int) []byte {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst.Pix
}

// Rebuild drops every page and resets the packing cursor for new cell
// metrics. Callers must treat every previously issued AtlasEntry as
// invalid and re-rasterize their glyph cache from scratch.
func (p *AtlasPacker) Rebuild(newCellWidth, newCellHeight int) {
	p.pages = nil
	p.cellWidth, p.cellHeight = newCellWidth, newCellHeight
	p.nextX, p.nextY, p.rowHeight = 0, 0, newCellHeight
}

// PageCount reports how many pages have been allocated so far.
func (p *AtlasPacker) PageCount() int { return len(p.pages) }

// Page returns page i's backing image, or nil if out of range — the bytes
// a renderer would upload to a texture.
func (p *AtlasPacker) Page(i int) *image.RGBA {
	if i < 0 || i >= len(p.pages) {
		return nil
	}
	return p.pages[i]
}
