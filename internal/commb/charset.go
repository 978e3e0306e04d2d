package commb

// aisCharset maps the 6-bit codes used by BDS2,0 callsign characters to
// printable ASCII. Index 0 is the padding sentinel '@'; unused codes map
// to '\x00', a byte that is never a valid callsign character (uppercase
// letter, digit, space, or '@') so it always vetoes BDS2,0.
var aisCharset = [64]byte{
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', 0, 0, 0, 0, 0,
	' ', 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 0, 0, 0, 0, 0, 0,
}

// isCallsignChar reports whether c is uppercase letter, digit, space, or
// the '@' padding sentinel — the only characters decodeAircraftIdent
// accepts.
func isCallsignChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ' ' || c == '@':
		return true
	default:
		return false
	}
}
