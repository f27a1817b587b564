package tour

import "fmt"

// Variant is a tagged union: a value is exactly one of Variant1, Variant2 or
// Variant3. The unexported method seals the set so no other package can add
// alternatives.
type Variant interface {
	fmt.Stringer
	isVariant()
}

// Variant1 is the empty marker alternative.
type Variant1 struct{}

// Variant2 carries an integer.
type Variant2 int

// Variant3 carries a named text field.
type Variant3 struct {
	Field string
}

func (Variant1) isVariant() {}
func (Variant2) isVariant() {}
func (Variant3) isVariant() {}

func (Variant1) String() string   { return "Variant1" }
func (v Variant2) String() string { return fmt.Sprintf("Variant2(%d)", int(v)) }
func (v Variant3) String() string { return fmt.Sprintf("Variant3 { field: %s }", v.Field) }

// Describe switches over every alternative. The default branch only fires
// for a nil Variant.
func Describe(v Variant) string {
	switch v := v.(type) {
	case Variant1:
		return "marker"
	case Variant2:
		return fmt.Sprintf("integer %d", int(v))
	case Variant3:
		return fmt.Sprintf("text %q", v.Field)
	default:
		return "none"
	}
}

func demoEnum(e env) error {
	var v Variant = Variant2(20)

	// Type assertion with ok: act only when v holds a Variant2.
	if val, ok := v.(Variant2); ok {
		if _, err := fmt.Fprintf(e.w, "열거형: Variant2(%d)\n", int(val)); err != nil {
			return err
		}
	}
	e.logger.Debug("enum", "variant", v, "describe", Describe(v))
	return nil
}
