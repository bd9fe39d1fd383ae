// Package console prepares the Linux virtual terminal for framebuffer output
// and watches the keyboard for a quit key while it is in use.
package console

import "context"

// Logger matches the component logger used across the module.
type Logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

// Linux input-event-codes.h
const (
	KeyEsc uint16 = 1
	KeyQ   uint16 = 16
	KeyF4  uint16 = 62
)

// DefaultQuitKeys stop a framebuffer preview.
var DefaultQuitKeys = []uint16{KeyEsc, KeyQ, KeyF4}

// ttyPaths are tried in order; /dev/tty is the controlling terminal and
// /dev/tty0 the active VT.
var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

// Takeover switches the console to graphics mode and hides the cursor.
// The returned function restores text mode and is safe to call on error.
func Takeover(logger Logger) (restore func()) {
	graphics := setMode(modeGraphics) == nil
	if !graphics {
		logf(logger, "KD_GRAPHICS unavailable, drawing over the text console")
	}
	if err := writeVT(hideCursor); err != nil {
		logf(logger, "hide cursor: %v", err)
	}
	return func() {
		if graphics {
			if err := setMode(modeText); err != nil && logger != nil {
				logger.Errorf("tty", "KD_TEXT: %v", err)
			}
		}
		_ = writeVT(showCursor)
	}
}

// WatchQuit cancels through onQuit the first time any of keys is pressed
// on an evdev keyboard. It returns immediately; watching stops with ctx.
func WatchQuit(ctx context.Context, logger Logger, keys []uint16, onQuit func()) {
	if onQuit == nil || len(keys) == 0 {
		return
	}
	watchKeys(ctx, logger, keys, onQuit)
}

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

func logf(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Infof("tty", format, args...)
	}
}
