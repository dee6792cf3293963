package view

// Pixel intensities written by View.Render.
const (
	Off uint8 = 0
	On  uint8 = 255
)

// Raster stores a 2D image of byte-sized pixels in row-major order.
type Raster struct {
	W, H int
	data []uint8
}

// NewRaster allocates a raster with the given dimensions. Negative
// dimensions are treated as zero.
func NewRaster(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{W: w, H: h, data: make([]uint8, w*h)}
}

// Pixels exposes the backing slice so callers can read/write values directly.
func (r *Raster) Pixels() []uint8 { return r.data }

// Index returns the linear slice index for coordinates (x, y).
func (r *Raster) Index(x, y int) int { return y*r.W + x }

// Clear fills the raster with Off.
func (r *Raster) Clear() {
	for i := range r.data {
		r.data[i] = Off
	}
}
