//go:build linux

package tour

import (
	"fmt"
	"io"
)

func areWeOnLinux(w io.Writer) error {
	_, err := fmt.Fprintln(w, "리눅스에서 실행 중")
	return err
}
