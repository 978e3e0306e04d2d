package modescrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCleanFrameIsZero(t *testing.T) {
	frame := make([]byte, 7)
	assert.Zero(t, Compute(frame))
}

func TestComputeIsDeterministic(t *testing.T) {
	frame := []byte{0x28, 0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}
	assert.Equal(t, Compute(frame), Compute(append([]byte(nil), frame...)))
}

func TestCorrectAlreadyCleanFrame(t *testing.T) {
	frame := make([]byte, 7)
	corrected, clean := Correct(frame, 0)
	assert.Zero(t, corrected)
	assert.True(t, clean)
}

func TestCorrectAgainstTarget(t *testing.T) {
	frame := make([]byte, 14)
	target := Compute(frame)
	corrected, clean := Correct(frame, target)
	assert.Zero(t, corrected)
	assert.True(t, clean)
}
