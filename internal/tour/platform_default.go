//go:build !linux

package tour

import "io"

func areWeOnLinux(io.Writer) error { return nil }
