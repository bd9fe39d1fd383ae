package console

import "encoding/binary"

const evKey = 0x01

// keyPressed scans buf for input_event records and reports whether any is a
// press of one of keys. tvSize is the size of struct timeval on the
// running platform.
func keyPressed(buf []byte, tvSize int, keys []uint16) bool {
	size := tvSize + 8
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize:])
		code := binary.LittleEndian.Uint16(rec[tvSize+2:])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4:]))
		if typ != evKey || value != 1 {
			continue
		}
		for _, k := range keys {
			if code == k {
				return true
			}
		}
	}
	return false
}
