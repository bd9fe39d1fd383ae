//go:build !linux

package console

import "errors"

const (
	modeText     = 0
	modeGraphics = 1
)

var errNoVT = errors.New("virtual terminal control is only supported on linux")

func setMode(int) error    { return errNoVT }
func writeVT(string) error { return errNoVT }
