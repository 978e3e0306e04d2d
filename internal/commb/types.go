// Package commb classifies and decodes Mode S Comm-B payloads.
//
// A Comm-B payload (the 56-bit MB field of a DF20 altitude reply or DF21
// identity reply) carries no self-identifying register tag once it has
// left the interrogator that requested it. Classify recovers the most
// plausible BDS register by scoring every known candidate layout against
// the same 7 bytes and picking the unique best match.
package commb

// Format is the commb_format classification tag written back to a Frame.
type Format int

const (
	// FormatNotDecoded means the frame was gated out before any candidate
	// ran (DR/UM set, or bits were error-corrected).
	FormatNotDecoded Format = iota
	// FormatUnknown means every candidate rejected the payload.
	FormatUnknown
	// FormatAmbiguous means two or more candidates tied at the best
	// positive score.
	FormatAmbiguous
	FormatEmptyResponse
	FormatDatalinkCaps
	FormatGICBCaps
	FormatAircraftIdent
	FormatACASRA
	FormatVerticalIntent
	FormatTrackTurn
	FormatHeadingSpeed
	FormatMRAR
	FormatAirbornePosition
)

func (f Format) String() string {
	switch f {
	case FormatNotDecoded:
		return "NOT_DECODED"
	case FormatUnknown:
		return "UNKNOWN"
	case FormatAmbiguous:
		return "AMBIGUOUS"
	case FormatEmptyResponse:
		return "EMPTY_RESPONSE"
	case FormatDatalinkCaps:
		return "DATALINK_CAPS"
	case FormatGICBCaps:
		return "GICB_CAPS"
	case FormatAircraftIdent:
		return "AIRCRAFT_IDENT"
	case FormatACASRA:
		return "ACAS_RA"
	case FormatVerticalIntent:
		return "VERTICAL_INTENT"
	case FormatTrackTurn:
		return "TRACK_TURN"
	case FormatHeadingSpeed:
		return "HEADING_SPEED"
	case FormatMRAR:
		return "MRAR"
	case FormatAirbornePosition:
		return "AIRBORNE_POSITION"
	default:
		return "UNKNOWN"
	}
}

// AltitudeSource identifies which system is driving the selected altitude
// reported in a BDS4,0 Selected Vertical Intention message.
type AltitudeSource int

const (
	AltSourceUnknown AltitudeSource = iota
	AltSourceAircraft
	AltSourceMCP
	AltSourceFMS
	AltSourceInvalid
)

func (s AltitudeSource) String() string {
	switch s {
	case AltSourceUnknown:
		return "UNKNOWN"
	case AltSourceAircraft:
		return "AIRCRAFT"
	case AltSourceMCP:
		return "MCP"
	case AltSourceFMS:
		return "FMS"
	default:
		return "INVALID"
	}
}

// HeadingType distinguishes a ground-track angle (BDS5,0) from a magnetic
// heading (BDS6,0) — both land in the same Frame.Heading field.
type HeadingType int

const (
	HeadingGroundTrack HeadingType = iota
	HeadingMagnetic
)

func (t HeadingType) String() string {
	if t == HeadingMagnetic {
		return "MAGNETIC"
	}
	return "GROUND_TRACK"
}

// NavMode bits, BDS4,0 bits 49..51 (see decodeVerticalIntent).
type NavMode int

const (
	NavModeApproach NavMode = 1 << iota // bit 51
	NavModeAltHold                      // bit 50
	NavModeVNAV                         // bit 49
)

// Hazard is the BDS4,4 turbulence hazard level, bits 48..49.
type Hazard int

const (
	HazardNil Hazard = iota
	HazardLight
	HazardModerate
	HazardSevere
)

func (h Hazard) String() string {
	switch h {
	case HazardNil:
		return "NIL"
	case HazardLight:
		return "LIGHT"
	case HazardModerate:
		return "MODERATE"
	case HazardSevere:
		return "SEVERE"
	default:
		return "NIL"
	}
}

// MRARSource is the meteorological reporting source tag, BDS4,4 bits 1..4.
// 0 is the invalid sentinel; values at or above MRARSourceReserved are not
// in use by the domain standard but are not rejected outright here beyond
// that boundary check.
type MRARSource int

const (
	MRARSourceInvalid MRARSource = 0
	MRARSourceINS     MRARSource = 1
	MRARSourceGNSS    MRARSource = 2
	MRARSourceDMEDME  MRARSource = 3
	MRARSourceVOR     MRARSource = 4
	MRARSourceReserved MRARSource = 5
)

// NavData is the BDS4,0 Selected Vertical Intention decode.
type NavData struct {
	MCPAltitude      int // ft
	MCPAltitudeValid bool
	FMSAltitude      int // ft
	FMSAltitudeValid bool
	QNH              float64 // hPa
	QNHValid         bool
	Modes            NavMode
	ModesValid       bool
	AltitudeSource   AltitudeSource
}

// GroundSpeed carries the three shadow ground-speed fields used elsewhere
// in the tracking pipeline (v0, v2, selected); BDS5,0 sets all three
// identically since it has only one speed estimate to offer.
type GroundSpeed struct {
	V0       float64
	V2       float64
	Selected float64
}

// Kinematics holds the roll/heading/speed/rate fields shared by BDS5,0 and
// BDS6,0. Each populates its own subset, except that both write Heading,
// told apart by HeadingType.
type Kinematics struct {
	Roll      float64
	RollValid bool

	Heading      float64
	HeadingType  HeadingType
	HeadingValid bool

	GS      GroundSpeed
	GSValid bool

	TrackRate      float64 // deg/s
	TrackRateValid bool

	TAS      float64 // kt
	TASValid bool

	IAS      float64 // kt
	IASValid bool

	Mach      float64
	MachValid bool

	BaroRate      int // ft/min
	BaroRateValid bool

	GeomRate      int // ft/min
	GeomRateValid bool
}

// Meteorological is the BDS4,4 MRAR decode.
type Meteorological struct {
	Source      MRARSource
	SourceValid bool

	WindSpeed float64 // kt
	WindDir   float64 // deg
	WindValid bool

	Temperature float64 // C
	TempValid   bool

	Pressure      float64 // hPa
	PressureValid bool

	Turbulence      Hazard
	TurbulenceValid bool

	Humidity      float64 // %
	HumidityValid bool
}

// Frame is the frame descriptor the core reads from and writes back to.
// Callers populate the input fields from an already CRC-checked,
// error-corrected Mode S DF20/DF21 frame; Classify populates the rest.
type Frame struct {
	// Input fields, set by the caller.
	Msgtype       int // 20 or 21
	MB            [7]byte
	DR            int
	UM            int
	CorrectedBits int
	AC            int // 13-bit altitude code, DF20 only

	// Output: classification.
	Format Format

	// Output: callsign (BDS2,0).
	Callsign      string
	CallsignValid bool

	// Output: navigation block (BDS4,0).
	Nav NavData

	// Output: kinematics block (BDS5,0 / BDS6,0).
	Kinematics Kinematics

	// Output: meteorological block (BDS4,4).
	Met Meteorological
}

// CallsignString returns the callsign if valid, or an empty string.
// It is a read-only projection for logging, not a decoding step.
func (f *Frame) CallsignString() string {
	if !f.CallsignValid {
		return ""
	}
	return f.Callsign
}

// IsClassified reports whether Classify reached a definite BDS tag
// (as opposed to NOT_DECODED/UNKNOWN/AMBIGUOUS).
func (f *Frame) IsClassified() bool {
	switch f.Format {
	case FormatNotDecoded, FormatUnknown, FormatAmbiguous:
		return false
	default:
		return true
	}
}
