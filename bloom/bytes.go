package bloom

import "encoding/binary"

func readU32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
