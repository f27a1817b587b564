package tour

import "fmt"

// Copyable has only value fields, so assignment copies it completely.
type Copyable struct {
	Field int
}

func demoDerive(e env) error {
	original := Copyable{Field: 100}

	dup := original // full copy, no shared state
	dup.Field++
	e.logger.Debug("derive", "original", original.Field, "copy", dup.Field)

	_, err := fmt.Fprintf(e.w, "Derive: %+v\n", original)
	return err
}
