package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commbdecode/internal/modescrc"
)

func buildFrame(t *testing.T, df byte, dr, um, ac int, mb [7]byte, icao uint32) [14]byte {
	t.Helper()
	var raw [14]byte
	raw[0] = df << 3
	setbits14(&raw, 9, 13, uint(dr))
	setbits14(&raw, 14, 19, uint(um))
	if df == 20 {
		setbits14(&raw, 20, 32, uint(ac))
	}
	copy(raw[4:11], mb[:])

	crc := modescrc.Compute(raw[:11]) ^ icao
	raw[11] = byte(crc >> 16)
	raw[12] = byte(crc >> 8)
	raw[13] = byte(crc)
	return raw
}

func setbits14(raw *[14]byte, lo, hi int, value uint) {
	nbits := hi - lo + 1
	for i := 0; i < nbits; i++ {
		bitIdx := lo + i - 1
		bit := (value >> uint(nbits-1-i)) & 1
		byteIdx := bitIdx / 8
		shift := 7 - (bitIdx % 8)
		if bit != 0 {
			raw[byteIdx] |= 1 << uint(shift)
		}
	}
}

func TestFrameRejectsNonCommB(t *testing.T) {
	var raw [14]byte
	raw[0] = 17 << 3
	_, err := Frame(raw, 0)
	assert.ErrorIs(t, err, ErrNotCommB)
}

func TestFrameExtractsDF20Fields(t *testing.T) {
	mb := [7]byte{0x30, 0, 0, 0, 0, 0, 0}
	raw := buildFrame(t, 20, 0, 0, 5000, mb, 0xABCDEF)

	f, err := Frame(raw, 0xABCDEF)
	require.NoError(t, err)
	assert.Equal(t, 20, f.Msgtype)
	assert.Equal(t, 0, f.DR)
	assert.Equal(t, 0, f.UM)
	assert.Equal(t, 5000, f.AC)
	assert.Equal(t, mb, f.MB)
	assert.Zero(t, f.CorrectedBits)
}

func TestFrameRejectsBadAddressParity(t *testing.T) {
	mb := [7]byte{0x30, 0, 0, 0, 0, 0, 0}
	raw := buildFrame(t, 21, 0, 0, 0, mb, 0xABCDEF)

	_, err := Frame(raw, 0x000000)
	assert.Error(t, err)
}
