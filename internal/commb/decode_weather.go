package commb

// decodeMRAR recognises BDS4,4 Meteorological Routine Air Report. The
// source tag at bits 1..4 must be a legal, non-reserved value, and wind
// plus static air temperature must both be present — every MRAR seen in
// practice carries at least those two.
//
// The static-air-temperature field layout here is the empirically
// corrected one: the domain standard's documented layout is off by one
// bit and does not decode consistently against observed traffic.
func decodeMRAR(f *Frame, store bool) int {
	mb := &f.MB

	source := MRARSource(getbits(mb, 1, 4))

	windValid := getbit(mb, 5) != 0
	windSpeedRaw := getbits(mb, 6, 14)
	windDirRaw := getbits(mb, 15, 23)

	satValid := getbit(mb, 24) != 0
	satSign := getbit(mb, 25) != 0
	satRaw := getbits(mb, 26, 34)

	aspValid := getbit(mb, 35) != 0
	aspRaw := getbits(mb, 36, 46)

	turbValid := getbit(mb, 47) != 0
	turbRaw := getbits(mb, 48, 49)

	humValid := getbit(mb, 50) != 0
	humRaw := getbits(mb, 51, 56)

	if source == MRARSourceInvalid || source >= MRARSourceReserved {
		return 0
	}
	if !windValid || !satValid {
		return 0
	}
	if !aspValid && aspRaw != 0 {
		return 0
	}
	if !turbValid && turbRaw != 0 {
		return 0
	}
	if !humValid && humRaw != 0 {
		return 0
	}

	score := 0

	windSpeed := float64(windSpeedRaw)
	windDir := float64(windDirRaw) * (180.0 / 256.0)
	switch {
	case windSpeedRaw == 0:
		score += 2 // possible but uncommon
	case windSpeed <= 250:
		score += 19
	default:
		return 0
	}

	sat := float64(satRaw) * 0.25
	if satSign {
		sat -= 128
	}
	switch {
	case sat == 0:
		score += 2 // possible but uncommon
	case sat >= -80 && sat <= 60:
		score += 11
	default:
		return 0
	}

	var asp float64
	if aspValid {
		asp = float64(aspRaw)
		if asp < 25 || asp > 1100 {
			return 0
		}
		score += 12
	} else {
		score += 1
	}

	turbulence := HazardNil
	if turbValid {
		turbulence = Hazard(turbRaw)
		score += 3
	} else {
		score += 1
	}

	var humidity float64
	if humValid {
		humidity = float64(humRaw) * (100.0 / 64.0)
		score += 7
	} else {
		score += 1
	}

	if source == MRARSourceDMEDME && windValid && satValid && score > 0 {
		// Some GICB capability bitmaps structurally satisfy every MRAR
		// check (DME/DME source, wind+temp valid bits set, trailing
		// bits zero); only accept this as MRAR as a last resort so a
		// genuine GICB or Heading/Speed candidate can win instead.
		score = 1
	}

	if store {
		f.Format = FormatMRAR
		f.Met.SourceValid = true
		f.Met.Source = source
		f.Met.WindValid = true
		f.Met.WindSpeed = windSpeed
		f.Met.WindDir = windDir
		f.Met.TempValid = true
		f.Met.Temperature = sat
		if aspValid {
			f.Met.PressureValid = true
			f.Met.Pressure = asp
		}
		if turbValid {
			f.Met.TurbulenceValid = true
			f.Met.Turbulence = turbulence
		}
		if humValid {
			f.Met.HumidityValid = true
			f.Met.Humidity = humidity
		}
	}

	return score
}
