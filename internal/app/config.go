package app

import "time"

// Default configuration constants.
const (
	DefaultSource        = "localhost:30005" // dump1090-style Beast TCP feed
	DefaultLogDir        = "./logs"
	DefaultAddressMaxAge = 5 * time.Minute
)

// Config holds application configuration.
type Config struct {
	// Source is a host:port Beast-protocol TCP feed. Ignored if
	// InputFile is set.
	Source string
	// InputFile, if set, reads a raw Beast-protocol capture from disk
	// instead of dialing Source. Useful for replaying a recording.
	InputFile string

	LogDir       string
	LogRotateUTC bool

	// AddressMaxAge bounds how long an ICAO learned from a DF11/17/18
	// squitter stays eligible for Comm-B address/parity resolution.
	AddressMaxAge time.Duration

	Verbose     bool
	ShowVersion bool
}
