package render

// Glyph is the abstract content of a frame cell; the presenter picks runes and colors
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphWallHorizontal
	GlyphWallVertical
	GlyphEnemy
)

// Cell is one frame buffer entry
type Cell struct {
	Glyph     Glyph
	Highlight bool
}

// FrameBuffer is a fixed W×H character frame, row-major, fully repainted every tick
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer creates a blank frame
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &FrameBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

func (f *FrameBuffer) Width() int  { return f.width }
func (f *FrameBuffer) Height() int { return f.height }

// Clear resets all cells to blank using exponential copy
func (f *FrameBuffer) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = Cell{}
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// inBounds returns true if in frame bounds
func (f *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes one cell; out-of-range writes are dropped
func (f *FrameBuffer) Set(x, y int, c Cell) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// At reads one cell; out-of-range reads return a blank cell
func (f *FrameBuffer) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

// DrawColumn paints a vertical run of height cells starting at row top, clipped to the frame
func (f *FrameBuffer) DrawColumn(x, top, height int, g Glyph) {
	if x < 0 || x >= f.width || height <= 0 {
		return
	}
	start := max(top, 0)
	end := min(top+height, f.height)
	for y := start; y < end; y++ {
		f.cells[y*f.width+x] = Cell{Glyph: g}
	}
}

// FillRect paints a w×h rectangle with its top-left at (x, y), clipped to the frame
func (f *FrameBuffer) FillRect(x, y, w, h int, c Cell) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.width), min(y+h, f.height)
	for row := y0; row < y1; row++ {
		base := row * f.width
		for col := x0; col < x1; col++ {
			f.cells[base+col] = c
		}
	}
}

// Count returns the number of cells holding glyph g
func (f *FrameBuffer) Count(g Glyph) int {
	n := 0
	for _, c := range f.cells {
		if c.Glyph == g {
			n++
		}
	}
	return n
}
