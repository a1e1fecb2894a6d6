package lookup

// DefaultGap is the vertical distance, in rows, between a word and its popup.
const DefaultGap = 1

// Point is a position in screen coordinates.
type Point struct {
	X int
	Y int
}

// Positioner computes popup anchors from pointer coordinates.
type Positioner struct {
	Gap int
}

// Position returns the popup anchor for a pointer at the given client
// coordinates while the content is scrolled down by scrollY.
func (p Positioner) Position(pointer Point, scrollY int) Point {
	return Point{
		X: pointer.X,
		Y: pointer.Y + scrollY + p.Gap,
	}
}

// Position uses DefaultGap.
func Position(pointer Point, scrollY int) Point {
	return Positioner{Gap: DefaultGap}.Position(pointer, scrollY)
}

// CenterLeft returns the left edge of a box of the given width centered on x.
// The result is never negative.
func CenterLeft(x, width int) int {
	return max(0, x-width/2)
}
