package binlayout

// U128 is an unsigned 128-bit integer split into two 64-bit words.
type U128 struct {
	Hi uint64
	Lo uint64
}

// I128 is a signed 128-bit two's-complement integer. The high word
// carries the sign.
type I128 struct {
	Hi int64
	Lo uint64
}

// U128FromUint64 widens v to 128 bits.
func U128FromUint64(v uint64) U128 {
	return U128{Lo: v}
}

// I128FromInt64 sign-extends v to 128 bits.
func I128FromInt64(v int64) I128 {
	if v < 0 {
		return I128{Hi: -1, Lo: uint64(v)}
	}
	return I128{Lo: uint64(v)}
}

func putU128(e Endianness, b []byte, v U128) {
	order := e.Order()
	if e == BigEndian {
		order.PutUint64(b[0:8], v.Hi)
		order.PutUint64(b[8:16], v.Lo)
	} else {
		order.PutUint64(b[0:8], v.Lo)
		order.PutUint64(b[8:16], v.Hi)
	}
}

func getU128(e Endianness, b []byte) U128 {
	order := e.Order()
	if e == BigEndian {
		return U128{Hi: order.Uint64(b[0:8]), Lo: order.Uint64(b[8:16])}
	}
	return U128{Lo: order.Uint64(b[0:8]), Hi: order.Uint64(b[8:16])}
}

func putI128(e Endianness, b []byte, v I128) {
	putU128(e, b, U128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func getI128(e Endianness, b []byte) I128 {
	u := getU128(e, b)
	return I128{Hi: int64(u.Hi), Lo: u.Lo}
}
