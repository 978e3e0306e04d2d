// Package ingest turns a raw 112-bit Mode S long frame into the
// commb.Frame descriptor the classifier expects, performing the
// CRC/error-correction and DF-level field extraction that commb
// explicitly treats as an external collaborator's job.
package ingest

import (
	"fmt"

	"commbdecode/internal/commb"
	"commbdecode/internal/modescrc"
)

// ErrNotCommB is returned when a frame's Downlink Format is not 20 or 21
// and therefore carries no Comm-B payload.
var ErrNotCommB = fmt.Errorf("frame is not a DF20/DF21 Comm-B reply")

// Frame parses a 14-byte Mode S long message into a commb.Frame, running
// CRC validation and single/two-bit error correction first. icao is the
// aircraft's known 24-bit address, required to validate the DF20/DF21
// address/parity field (these formats XOR the CRC remainder with the
// transmitting aircraft's address rather than transmitting a bare CRC).
func Frame(raw [14]byte, icao uint32) (*commb.Frame, error) {
	df := raw[0] >> 3
	if df != 20 && df != 21 {
		return nil, ErrNotCommB
	}

	work := raw
	correctedBits := 0
	if modescrc.Compute(work[:])^icao != 0 {
		bits, clean := modescrc.Correct(work[:], icao)
		if !clean {
			return nil, fmt.Errorf("frame failed CRC/address-parity check")
		}
		correctedBits = bits
	}

	dr := int(getbits(work[:], 9, 13))
	um := int(getbits(work[:], 14, 19))

	ac := 0
	if df == 20 {
		ac = int(getbits(work[:], 20, 32))
	}

	var mb [7]byte
	copy(mb[:], work[4:11])

	f := &commb.Frame{
		Msgtype:       int(df),
		MB:            mb,
		DR:            dr,
		UM:            um,
		AC:            ac,
		CorrectedBits: correctedBits,
	}

	return f, nil
}

// getbits reads bits lo..hi (1-indexed, MSB-first) from a byte slice of
// arbitrary length, mirroring the convention commb.getbit/getbits use
// internally but generalised beyond 56 bits for full 112-bit frames.
func getbits(data []byte, lo, hi int) uint64 {
	var value uint64
	for bi := lo - 1; bi <= hi-1; bi++ {
		value <<= 1
		byteIdx := bi / 8
		shift := 7 - (bi % 8)
		if data[byteIdx]&(1<<uint(shift)) != 0 {
			value |= 1
		}
	}
	return value
}
