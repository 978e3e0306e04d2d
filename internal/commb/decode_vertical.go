package commb

// decodeVerticalIntent recognises BDS4,0 Selected Vertical Intention.
// There is no identifier byte; plausibility rests on three altitude/
// pressure fields each being either validly in range or cleanly absent
// (invalid flag clear and raw bits zero), two reserved blocks being
// zero, and a 3-bit capability-mode field and a 2-bit altitude-source
// field that score a flat bonus when present.
//
// Note: the bit ranges below intentionally swap the field labels used
// by some renderings of this register. Bits 48/49..51 carry the 3-bit
// capability-mode flags and bits 54/55..56 carry the 2-bit altitude
// source — observed traffic and the reference decoder agree on this
// layout even though it reads backwards from the register's own field
// names.
func decodeVerticalIntent(f *Frame, store bool) int {
	mb := &f.MB

	mcpValid := getbit(mb, 1) != 0
	mcpRaw := getbits(mb, 2, 13)
	fmsValid := getbit(mb, 14) != 0
	fmsRaw := getbits(mb, 15, 26)
	baroValid := getbit(mb, 27) != 0
	baroRaw := getbits(mb, 28, 39)
	reserved1 := getbits(mb, 40, 47)
	modeValid := getbit(mb, 48) != 0
	modeRaw := getbits(mb, 49, 51)
	reserved2 := getbits(mb, 52, 53)
	sourceValid := getbit(mb, 54) != 0
	sourceRaw := getbits(mb, 55, 56)

	if !mcpValid && !fmsValid && !baroValid && !modeValid && !sourceValid {
		return 0
	}

	score := 0

	var mcpAlt uint
	switch {
	case mcpValid && mcpRaw != 0:
		mcpAlt = mcpRaw * 16
		if mcpAlt < 1000 || mcpAlt > 50000 {
			return 0
		}
		score += 13
	case !mcpValid && mcpRaw == 0:
		score += 1
	default:
		return 0
	}

	var fmsAlt uint
	switch {
	case fmsValid && fmsRaw != 0:
		fmsAlt = fmsRaw * 16
		if fmsAlt < 1000 || fmsAlt > 50000 {
			return 0
		}
		score += 13
	case !fmsValid && fmsRaw == 0:
		score += 1
	default:
		return 0
	}

	var baro float64
	switch {
	case baroValid && baroRaw != 0:
		baro = 800 + float64(baroRaw)*0.1
		if baro < 900 || baro > 1100 {
			return 0
		}
		score += 13
	case !baroValid && baroRaw == 0:
		score += 1
	default:
		return 0
	}

	if reserved1 != 0 {
		return 0
	}

	switch {
	case modeValid:
		score += 4
	case !modeValid && modeRaw == 0:
		score += 1
	default:
		return 0
	}

	if reserved2 != 0 {
		return 0
	}

	switch {
	case sourceValid:
		score += 3
	case !sourceValid && sourceRaw == 0:
		score += 1
	default:
		return 0
	}

	if mcpValid && fmsValid && mcpAlt != fmsAlt {
		score -= 4
	}
	if mcpValid && !altitudeOnStep(mcpAlt) {
		score -= 4
	}
	if fmsValid && !altitudeOnStep(fmsAlt) {
		score -= 4
	}

	if store {
		f.Format = FormatVerticalIntent
		if mcpValid {
			f.Nav.MCPAltitudeValid = true
			f.Nav.MCPAltitude = int(mcpAlt)
		}
		if fmsValid {
			f.Nav.FMSAltitudeValid = true
			f.Nav.FMSAltitude = int(fmsAlt)
		}
		if baroValid {
			f.Nav.QNHValid = true
			f.Nav.QNH = baro
		}
		if modeValid {
			f.Nav.ModesValid = true
			var modes NavMode
			if modeRaw&4 != 0 {
				modes |= NavModeVNAV
			}
			if modeRaw&2 != 0 {
				modes |= NavModeAltHold
			}
			if modeRaw&1 != 0 {
				modes |= NavModeApproach
			}
			f.Nav.Modes = modes
		}
		if sourceValid {
			switch sourceRaw {
			case 0:
				f.Nav.AltitudeSource = AltSourceUnknown
			case 1:
				f.Nav.AltitudeSource = AltSourceAircraft
			case 2:
				f.Nav.AltitudeSource = AltSourceMCP
			case 3:
				f.Nav.AltitudeSource = AltSourceFMS
			default:
				f.Nav.AltitudeSource = AltSourceInvalid
			}
		} else {
			f.Nav.AltitudeSource = AltSourceInvalid
		}
	}

	return score
}

// altitudeOnStep reports whether alt is within 16 ft of a 500 ft
// multiple, the tolerance a genuine MCP/FMS selection is expected to
// fall within.
func altitudeOnStep(alt uint) bool {
	remainder := alt % 500
	return remainder < 16 || remainder > 484
}
