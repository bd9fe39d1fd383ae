//go:build linux

package console

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

func watchKeys(ctx context.Context, logger Logger, keys []uint16, onQuit func()) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logf(logger, "no evdev devices, quit keys disabled")
		return
	}

	tvSize := binary.Size(unix.Timeval{})
	var once sync.Once
	quit := func() {
		once.Do(func() {
			logf(logger, "quit key pressed")
			onQuit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, keys, quit)
	}
}

func watchDevice(ctx context.Context, path string, tvSize int, keys []uint16, quit func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if keyPressed(buf[:n], tvSize, keys) {
			quit()
			return
		}
	}
}
