package commb

import "math"

// decodeTrackTurn recognises BDS5,0 Track and Turn Report. Every real
// transmission of this register carries roll, ground track, ground
// speed and TAS, so any of those four being invalid vetoes outright.
func decodeTrackTurn(f *Frame, store bool) int {
	mb := &f.MB

	rollValid := getbit(mb, 1) != 0
	rollSign := getbit(mb, 2) != 0
	rollRaw := getbits(mb, 3, 11)

	trackValid := getbit(mb, 12) != 0
	trackSign := getbit(mb, 13) != 0
	trackRaw := getbits(mb, 14, 23)

	gsValid := getbit(mb, 24) != 0
	gsRaw := getbits(mb, 25, 34)

	trackRateValid := getbit(mb, 35) != 0
	trackRateSign := getbit(mb, 36) != 0
	trackRateRaw := getbits(mb, 37, 45)

	tasValid := getbit(mb, 46) != 0
	tasRaw := getbits(mb, 47, 56)

	if !rollValid || !trackValid || !gsValid || !tasValid {
		return 0
	}

	score := 0

	roll := float64(rollRaw) * 45.0 / 256.0
	if rollSign {
		roll -= 90.0
	}
	if roll < -40 || roll >= 40 {
		return 0
	}
	score += 11

	track := float64(trackRaw) * 90.0 / 512.0
	if trackSign {
		track += 180.0
	}
	score += 12

	var gs uint
	switch {
	case gsRaw != 0:
		gs = gsRaw * 2
		if gs < 50 || gs > 700 {
			return 0
		}
		score += 11
	default:
		return 0
	}

	var trackRate float64
	switch {
	case trackRateValid:
		trackRate = float64(trackRateRaw) * 8.0 / 256.0
		if trackRateSign {
			trackRate -= 16
		}
		if trackRate < -10.0 || trackRate > 10.0 {
			return 0
		}
		score += 11
	case !trackRateValid && trackRateRaw == 0 && !trackRateSign:
		score += 1
	default:
		return 0
	}

	var tas uint
	switch {
	case tasRaw != 0:
		tas = tasRaw * 2
		if tas < 50 || tas > 700 {
			return 0
		}
		score += 11
	default:
		return 0
	}

	if math.Abs(float64(gs)-float64(tas)) > 150 {
		score -= 6
	}

	if trackRateValid && tas > 0 {
		turnRate := 68625 * math.Tan(roll*math.Pi/180.0) / (float64(tas) * 20 * math.Pi)
		if math.Abs(turnRate-trackRate) > 2.0 {
			score -= 6
		}
	}

	if store {
		f.Format = FormatTrackTurn
		f.Kinematics.RollValid = true
		f.Kinematics.Roll = roll
		f.Kinematics.HeadingValid = true
		f.Kinematics.Heading = track
		f.Kinematics.HeadingType = HeadingGroundTrack
		f.Kinematics.GSValid = true
		f.Kinematics.GS = GroundSpeed{V0: float64(gs), V2: float64(gs), Selected: float64(gs)}
		if trackRateValid {
			f.Kinematics.TrackRateValid = true
			f.Kinematics.TrackRate = trackRate
		}
		f.Kinematics.TASValid = true
		f.Kinematics.TAS = float64(tas)
	}

	return score
}

// decodeHeadingSpeed recognises BDS6,0 Heading and Speed Report. Heading,
// IAS and Mach must all be valid, and at least one vertical-rate source
// (barometric or inertial) must be valid.
func decodeHeadingSpeed(f *Frame, store bool) int {
	mb := &f.MB

	headingValid := getbit(mb, 1) != 0
	headingSign := getbit(mb, 2) != 0
	headingRaw := getbits(mb, 3, 12)

	iasValid := getbit(mb, 13) != 0
	iasRaw := getbits(mb, 14, 23)

	machValid := getbit(mb, 24) != 0
	machRaw := getbits(mb, 25, 34)

	baroRateValid := getbit(mb, 35) != 0
	baroRateSign := getbit(mb, 36) != 0
	baroRateRaw := getbits(mb, 37, 45)

	inertialRateValid := getbit(mb, 46) != 0
	inertialRateSign := getbit(mb, 47) != 0
	inertialRateRaw := getbits(mb, 48, 56)

	if !headingValid || !iasValid || !machValid || (!baroRateValid && !inertialRateValid) {
		return 0
	}

	score := 0

	heading := float64(headingRaw) * 90.0 / 512.0
	if headingSign {
		heading += 180.0
	}
	score += 12

	var ias uint
	switch {
	case iasRaw != 0:
		ias = iasRaw
		if ias < 50 || ias > 700 {
			return 0
		}
		score += 11
	default:
		return 0
	}

	var mach float64
	switch {
	case machRaw != 0:
		mach = float64(machRaw) * 2.048 / 512
		if mach < 0.1 || mach > 0.9 {
			return 0
		}
		score += 11
	default:
		return 0
	}

	var baroRate int
	switch {
	case baroRateValid:
		baroRate = int(baroRateRaw) * 32
		if baroRateSign {
			baroRate -= 16384
		}
		if baroRate < -6000 || baroRate > 6000 {
			return 0
		}
		score += 11
	case !baroRateValid && baroRateRaw == 0 && !baroRateSign:
		score += 1
	default:
		return 0
	}

	var inertialRate int
	switch {
	case inertialRateValid:
		inertialRate = int(inertialRateRaw) * 32
		if inertialRateSign {
			inertialRate -= 16384
		}
		if inertialRate < -6000 || inertialRate > 6000 {
			return 0
		}
		score += 11
	case !inertialRateValid && inertialRateRaw == 0 && !inertialRateSign:
		score += 1
	default:
		return 0
	}

	if baroRateValid && inertialRateValid {
		delta := baroRate - inertialRate
		if delta < 0 {
			delta = -delta
		}
		if delta > 2000 {
			score -= 12
		}
	}

	if store {
		f.Format = FormatHeadingSpeed
		f.Kinematics.HeadingValid = true
		f.Kinematics.Heading = heading
		f.Kinematics.HeadingType = HeadingMagnetic
		f.Kinematics.IASValid = true
		f.Kinematics.IAS = float64(ias)
		f.Kinematics.MachValid = true
		f.Kinematics.Mach = mach
		if baroRateValid {
			f.Kinematics.BaroRateValid = true
			f.Kinematics.BaroRate = baroRate
		}
		if inertialRateValid {
			// INS-derived vertical rate is treated as geometric rate
			// elsewhere in the tracking pipeline; keep that convention.
			f.Kinematics.GeomRateValid = true
			f.Kinematics.GeomRate = inertialRate
		}
	}

	return score
}
