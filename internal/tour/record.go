package tour

import "fmt"

// Describer is implemented by anything that can describe itself in one line.
type Describer interface {
	Describe() string
}

// Record is a plain struct with two fields.
type Record struct {
	Field1 int
	Field2 string
}

// Describe satisfies Describer. Go has no "implements" keyword: having the
// method is enough.
func (r Record) Describe() string {
	return fmt.Sprintf("field1: %d, field2: %s", r.Field1, r.Field2)
}

func demoRecord(e env) error {
	var d Describer = Record{Field1: 10, Field2: "Hello"}
	_, err := fmt.Fprintf(e.w, "구조체: %s\n", d.Describe())
	return err
}
