// Package geom provides plain geometric values.
package geom

import "fmt"

// Rectangle is an axis-aligned rectangle given by its side lengths. The
// dimensions are taken as given and not validated.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a Rectangle with the given sides.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width times height.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

func (r Rectangle) String() string { return fmt.Sprintf("%gx%g", r.Width, r.Height) }
