package tour

import "fmt"

// Holder stores one value of any type.
type Holder[T any] struct {
	Field T
}

// Identity returns its argument unchanged, whatever its type.
func Identity[T any](v T) T { return v }

func demoGeneric(e env) error {
	h := Holder[string]{Field: "Generic Field"}
	_, err := fmt.Fprintf(e.w, "제네릭: %s\n", Identity(h).Field)
	return err
}
