//go:build !linux

package console

import "context"

func watchKeys(ctx context.Context, logger Logger, keys []uint16, onQuit func()) {
	logf(logger, "quit keys need evdev, disabled on this platform")
}
