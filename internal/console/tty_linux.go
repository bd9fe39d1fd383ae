//go:build linux

package console

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// linux/kd.h
const (
	modeText     = 0x00
	modeGraphics = 0x01
	kdSetMode    = 0x4B3A
)

func setMode(mode int) error {
	var errs []error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", p, err))
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err))
	}
	return errors.Join(errs...)
}

func writeVT(seq string) error {
	var errs []error
	for _, p := range ttyPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = f.WriteString(seq)
		_ = f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
