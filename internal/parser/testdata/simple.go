package testdata

// @binlayout name=icmp_packet endian=big
type IcmpPacket struct {
	PacketType   byte
	Code         byte
	Checksum     uint16
	RestOfHeader [4]byte
	DataSection  []byte
}

// @binlayout
type Record struct {
	First  int8
	Second int64
	Third  uint16
}

// Plain struct without an annotation; must be ignored.
type NotALayout struct {
	Whatever string
}
