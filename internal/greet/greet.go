// Package greet sits behind a package boundary: only identifiers starting
// with an upper-case letter are visible to importers.
package greet

import (
	"fmt"
	"io"
)

// message is unexported and cannot be reached from outside this package.
const message = "접근 가능한 함수"

// PublicFunction is exported and prints a fixed message to w.
func PublicFunction(w io.Writer) {
	fmt.Fprintln(w, message)
}
