package commb

// decodeGICBCaps recognises BDS1,7 Common-Usage GICB Capability Report.
// There is no identifier byte for this register, so the entire score is
// built from a plausibility weighting of the capability bitmap:
// reserved bits 25..56 must be clear, near-universal capabilities
// (BDS2,0 aircraft identification) are rewarded when present and
// penalised when absent, rarely-equipped registers are penalised when
// present, and a handful of canonical bit-1..6 and bit-9/16/24 combinations
// carry bonuses — any other combination is treated as implausible.
func decodeGICBCaps(f *Frame, store bool) int {
	if getbits(&f.MB, 25, 56) != 0 {
		return 0
	}

	score := 0

	if getbit(&f.MB, 7) != 0 {
		score += 1 // BDS2,0 aircraft identification
	} else {
		score -= 2 // near-universal; penalise its absence
	}

	if getbit(&f.MB, 10) != 0 { // BDS4,1 next waypoint identifier
		score -= 2
	}
	if getbit(&f.MB, 11) != 0 { // BDS4,2 next waypoint position
		score -= 2
	}
	if getbit(&f.MB, 12) != 0 { // BDS4,3 next waypoint information
		score -= 2
	}
	if getbit(&f.MB, 13) != 0 { // BDS4,4 meteorological routine report
		score -= 1
	}
	if getbit(&f.MB, 14) != 0 { // BDS4,5 meteorological hazard report
		score -= 1
	}
	if getbit(&f.MB, 20) != 0 { // BDS5,4 waypoint 1
		score -= 2
	}
	if getbit(&f.MB, 21) != 0 { // BDS5,5 waypoint 2
		score -= 2
	}
	if getbit(&f.MB, 22) != 0 { // BDS5,6 waypoint 3
		score -= 2
	}

	b1, b2, b3 := getbit(&f.MB, 1), getbit(&f.MB, 2), getbit(&f.MB, 3)
	b4, b5, b6 := getbit(&f.MB, 4), getbit(&f.MB, 5), getbit(&f.MB, 6)
	switch {
	case b1 != 0 && b2 != 0 && b3 != 0 && b4 != 0 && b5 != 0:
		// ES capable
		score += 5
		if b6 != 0 {
			score += 1 // ES EDI
		}
	case b1 == 0 && b2 == 0 && b3 == 0 && b4 == 0 && b5 == 0 && b6 == 0:
		score += 1 // not ES capable
	case b1 == 0 && b2 == 0 && b3 != 0 && b4 != 0 && b5 != 0:
		score += 3 // ES, no position data
	default:
		score -= 12 // unlikely combination
	}

	b9, b16, b24 := getbit(&f.MB, 9), getbit(&f.MB, 16), getbit(&f.MB, 24)
	switch {
	case b16 != 0 && b24 != 0:
		score += 2 // track/turn, heading/speed
		if b9 != 0 {
			score += 1 // vertical intent
		}
	case b16 == 0 && b24 == 0 && b9 == 0:
		score += 1 // neither present
	default:
		score -= 6 // unlikely
	}

	if store {
		f.Format = FormatGICBCaps
	}
	return score
}
