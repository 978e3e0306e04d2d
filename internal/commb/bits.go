package commb

import "fmt"

// getbit returns bit n (1-indexed, MSB-first) of a 7-byte Comm-B payload.
func getbit(mb *[7]byte, n int) uint {
	bi := uint(n - 1)
	byteIdx := bi >> 3
	mask := byte(1) << (7 - (bi & 7))
	if mb[byteIdx]&mask != 0 {
		return 1
	}
	return 0
}

// getbits returns the unsigned integer formed by bits lo..hi inclusive,
// lo being most significant. Panics on hi < lo or hi > 56, matching the
// bit accessor contract: these indicate caller misuse, never a malformed
// but well-formed 56-bit payload.
func getbits(mb *[7]byte, lo, hi int) uint {
	if hi < lo || hi > 56 || lo < 1 {
		panic(fmt.Sprintf("commb: invalid bit range %d..%d", lo, hi))
	}

	var value uint
	fbi := uint(lo - 1)
	lbi := uint(hi - 1)
	for bi := fbi; bi <= lbi; bi++ {
		value <<= 1
		byteIdx := bi >> 3
		mask := byte(1) << (7 - (bi & 7))
		if mb[byteIdx]&mask != 0 {
			value |= 1
		}
	}
	return value
}
