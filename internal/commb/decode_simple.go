package commb

// decodeEmptyResponse recognises a null transponder response, or a
// transponder's way of declining to answer a BDS4,0/5,0/6,0 request:
// first byte in {0x00, 0x40, 0x50, 0x60}, all remaining bytes zero.
func decodeEmptyResponse(f *Frame, store bool) int {
	switch f.MB[0] {
	case 0x00, 0x40, 0x50, 0x60:
	default:
		return 0
	}

	for i := 1; i < 7; i++ {
		if f.MB[i] != 0 {
			return 0
		}
	}

	if store {
		f.Format = FormatEmptyResponse
	}
	return 56
}

// decodeDatalinkCaps recognises BDS1,0 Datalink Capability Report:
// identifier byte 0x10 and a clear reserved block at bits 10..14.
func decodeDatalinkCaps(f *Frame, store bool) int {
	if f.MB[0] != 0x10 {
		return 0
	}
	if getbits(&f.MB, 10, 14) != 0 {
		return 0
	}

	if store {
		f.Format = FormatDatalinkCaps
	}
	return 56
}

// decodeACASRA recognises BDS3,0 ACAS Resolution Advisory: identifier
// byte 0x30, no further field extraction.
func decodeACASRA(f *Frame, store bool) int {
	if f.MB[0] != 0x30 {
		return 0
	}

	if store {
		f.Format = FormatACASRA
	}
	return 56
}
