package console

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTVSize = 16

func event(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTVSize+8)
	binary.LittleEndian.PutUint16(rec[testTVSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTVSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTVSize+4:], uint32(value))
	return rec
}

func TestKeyPressed(t *testing.T) {
	var buf []byte
	buf = append(buf, event(0x00, 0, 0)...)
	buf = append(buf, event(evKey, KeyQ, 0)...)
	require.False(t, keyPressed(buf, testTVSize, DefaultQuitKeys), "release is ignored")

	buf = append(buf, event(evKey, 30, 1)...)
	require.False(t, keyPressed(buf, testTVSize, DefaultQuitKeys), "other keys are ignored")

	buf = append(buf, event(evKey, KeyEsc, 1)...)
	require.True(t, keyPressed(buf, testTVSize, DefaultQuitKeys))
	require.False(t, keyPressed(buf, testTVSize, []uint16{KeyF4}))
}

func TestKeyPressedIgnoresPartialRecord(t *testing.T) {
	rec := event(evKey, KeyEsc, 1)
	require.False(t, keyPressed(rec[:len(rec)-1], testTVSize, DefaultQuitKeys))
}

func TestWatchQuitWithoutKeysIsNoop(t *testing.T) {
	called := false
	WatchQuit(context.Background(), nil, nil, func() { called = true })
	WatchQuit(context.Background(), nil, DefaultQuitKeys, nil)
	require.False(t, called)
}
