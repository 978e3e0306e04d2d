package commb

// candidate is a pure-in-scoring-mode decoder for one recognised BDS
// register. Called with store=false during scoring (no frame writes
// permitted); the classifier re-invokes the unique winner with
// store=true to commit its fields.
type candidate func(f *Frame, store bool) int

// candidates is registered in the same order as the reference
// implementation's decoder table. Order has no effect on the winner
// (ties are decided by score, not position) but is kept for parity.
var candidates = []candidate{
	decodeEmptyResponse,
	decodeDatalinkCaps,
	decodeAircraftIdent,
	decodeACASRA,
	decodeGICBCaps,
	decodeVerticalIntent,
	decodeTrackTurn,
	decodeHeadingSpeed,
	decodeMRAR,
	decodeAirbornePosition,
}

// Classify runs the Comm-B classifier over f, reading its input fields
// (Msgtype, MB, DR, UM, CorrectedBits, AC) and writing Format plus any
// decoded field block back into f.
//
// f.MB is never mutated. Scoring candidates run with store=false and
// touch nothing observable; only the unique winner is re-invoked with
// store=true.
func Classify(f *Frame) {
	if f.DR != 0 || f.UM != 0 || f.CorrectedBits > 0 {
		f.Format = FormatNotDecoded
		return
	}

	bestScore := 0
	var best candidate
	ambiguous := false

	for _, c := range candidates {
		score := c(f, false)
		switch {
		case score > bestScore:
			bestScore = score
			best = c
			ambiguous = false
		case score == bestScore:
			ambiguous = true
		}
	}

	switch {
	case best == nil:
		f.Format = FormatUnknown
	case ambiguous:
		f.Format = FormatAmbiguous
	default:
		best(f, true)
	}
}
