package geom

// Range is the half-extent of the logical plane. All math content lives on
// a fixed [-Range, Range] x [-Range, Range] coordinate system regardless of
// how many pixels the canvas currently occupies.
const Range = 10.0

// Point is a position in world (logical plane) coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mapper converts between world coordinates and pixel coordinates for one
// canvas size. It is a plain value: rebuild it from the current width and
// height on every render so resizes are picked up for free.
type Mapper struct {
	Width  float64
	Height float64
}

// NewMapper returns a mapper for a canvas of the given pixel size.
func NewMapper(width, height float64) Mapper {
	return Mapper{Width: width, Height: height}
}

// ToScreen maps a world point to pixel coordinates. World Y grows upward,
// pixel Y grows downward, so the Y axis flips here.
func (m Mapper) ToScreen(wx, wy float64) (float64, float64) {
	px := m.Width/2 + wx*(m.Width/(2*Range))
	py := m.Height/2 - wy*(m.Height/(2*Range))
	return px, py
}

// ToWorld maps pixel coordinates back onto the logical plane.
func (m Mapper) ToWorld(px, py float64) (float64, float64) {
	wx := (px - m.Width/2) / (m.Width / (2 * Range))
	wy := (m.Height/2 - py) / (m.Height / (2 * Range))
	return wx, wy
}

// UnitX returns the pixel length of one world unit along X.
func (m Mapper) UnitX() float64 { return m.Width / (2 * Range) }

// UnitY returns the pixel length of one world unit along Y.
func (m Mapper) UnitY() float64 { return m.Height / (2 * Range) }
