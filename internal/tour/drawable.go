package tour

import (
	"fmt"
	"io"
)

// Drawable is anything that can draw itself to a writer.
type Drawable interface {
	Draw(w io.Writer) error
}

// Circle is the only Drawable in the tour.
type Circle struct {
	Radius int
}

func (c Circle) Draw(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Circle with radius %d\n", c.Radius)
	return err
}

func demoDrawable(e env) error {
	objects := []Drawable{Circle{Radius: 5}}
	for _, obj := range objects {
		// The concrete type is resolved at run time.
		if err := obj.Draw(e.w); err != nil {
			return err
		}
	}
	return nil
}
