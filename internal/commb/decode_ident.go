package commb

// decodeAircraftIdent recognises BDS2,0 Aircraft Identification:
// identifier byte 0x20 followed by eight 6-bit AIS characters spanning
// bits 9..56. A character outside {A-Z, 0-9, space, '@'} vetoes the
// whole candidate; an '@' is accepted (it is the padding sentinel) but
// suppresses export of the callsign.
func decodeAircraftIdent(f *Frame, store bool) int {
	if f.MB[0] != 0x20 {
		return 0
	}

	var callsign [8]byte
	ranges := [8][2]int{{9, 14}, {15, 20}, {21, 26}, {27, 32}, {33, 38}, {39, 44}, {45, 50}, {51, 56}}
	for i, r := range ranges {
		callsign[i] = aisCharset[getbits(&f.MB, r[0], r[1])]
	}

	score := 8
	valid := true
	for _, c := range callsign {
		if !isCallsignChar(c) {
			return 0
		}
		if c == '@' {
			valid = false
		} else {
			score += 6
		}
	}

	if store {
		f.Format = FormatAircraftIdent
		if valid {
			f.Callsign = string(callsign[:])
			f.CallsignValid = true
		}
	}
	return score
}
