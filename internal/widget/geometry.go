package widget

import "fmt"

// Rect is a screen-space rectangle in terminal cells.
// The zero value is the empty rectangle at the origin.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// r spans [X, X+Width) horizontally and [Y, Y+Height) vertically.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inner shrinks the rectangle by pad cells on every side.
// Returns an empty rectangle when the padding consumes it.
func (r Rect) Inner(pad int) Rect {
	in := Rect{X: r.X + pad, Y: r.Y + pad, Width: r.Width - 2*pad, Height: r.Height - 2*pad}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
