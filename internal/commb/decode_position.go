package commb

// decodeAirbornePosition is a defensive recogniser for BDS0,5 Extended
// Squitter Airborne Position. It exists only to keep a position
// payload from being mistaken for something else (MRAR in particular);
// it does not export a position and is never used as tracking input.
//
// Only considered for DF20, since the recognition hinges on matching
// the payload's reconstructed AC13 against the enclosing frame's own
// altitude code — DF21 carries no AC field to compare against.
func decodeAirbornePosition(f *Frame, store bool) int {
	if f.Msgtype != 20 {
		return 0
	}

	mb := &f.MB

	typecode := getbits(mb, 1, 5)
	if typecode < 9 || typecode > 18 {
		return 0
	}

	if getbit(mb, 21) != 0 { // "T" bit, unlikely to be set
		return 0
	}

	ac12 := getbits(mb, 9, 20)
	if ac12 == 0 {
		return 0
	}

	ac13 := ((ac12 & 0x0FC0) << 1) | (ac12 & 0x003F)
	if uint(f.AC) != ac13 {
		return 0
	}

	lat := getbits(mb, 23, 39)
	lon := getbits(mb, 40, 56)
	if lat == 0 || lon == 0 {
		return 0
	}

	if store {
		f.Format = FormatAirbornePosition
	}

	// Scored high enough to dominate any other candidate.
	return 100
}
