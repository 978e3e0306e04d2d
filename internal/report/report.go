// Package report formats classified Comm-B frames as CSV rows and writes
// them through a rotating log file, mirroring the BaseStation writer this
// module's teacher used for ADS-B tracks.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"commbdecode/internal/commb"
	"commbdecode/internal/logging"
)

// Record is one classified Comm-B frame tagged with its source aircraft
// and the timestamp the Beast decoder attached to the message.
type Record struct {
	ICAO      uint32
	Frame     *commb.Frame
	Timestamp time.Time
}

// Writer appends Records to a LogRotator-managed CSV stream.
type Writer struct {
	logRotator *logging.LogRotator
	logger     *logrus.Logger
}

// NewWriter creates a Writer backed by the given rotator.
func NewWriter(logRotator *logging.LogRotator, logger *logrus.Logger) *Writer {
	return &Writer{logRotator: logRotator, logger: logger}
}

// WriteRecord formats rec as CSV and appends it to the current log file.
// Frames that never reached a definite classification are still logged,
// since NOT_DECODED/UNKNOWN/AMBIGUOUS outcomes are themselves useful
// signal for anyone auditing the classifier's behaviour.
func (w *Writer) WriteRecord(rec Record) error {
	if rec.Frame == nil {
		return fmt.Errorf("record has nil frame")
	}

	line := formatCSV(rec)

	writer, err := w.logRotator.GetWriter()
	if err != nil {
		return fmt.Errorf("failed to get log writer: %w", err)
	}

	if _, err := writer.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("failed to write to log: %w", err)
	}

	w.logger.WithFields(logrus.Fields{
		"icao":   fmt.Sprintf("%06X", rec.ICAO),
		"format": rec.Frame.Format.String(),
	}).Debug("wrote comm-b record")

	return nil
}

// formatCSV renders one Record as a flat CSV row. Unset fields are left
// blank rather than printed as zero values, matching the BaseStation
// convention of an empty field for "not reported".
func formatCSV(rec Record) string {
	f := rec.Frame

	fields := []string{
		rec.Timestamp.Format("2006/01/02"),
		rec.Timestamp.Format("15:04:05.000"),
		fmt.Sprintf("%06X", rec.ICAO),
		f.Format.String(),
		strconv.Itoa(f.CorrectedBits),
		f.CallsignString(),
		navAltitudeField(f),
		kinematicsField(f),
		meteorologicalField(f),
	}

	return strings.Join(fields, ",")
}

func navAltitudeField(f *commb.Frame) string {
	if !f.IsClassified() || f.Format != commb.FormatVerticalIntent {
		return ""
	}
	var parts []string
	if f.Nav.MCPAltitudeValid {
		parts = append(parts, fmt.Sprintf("mcp=%d", f.Nav.MCPAltitude))
	}
	if f.Nav.FMSAltitudeValid {
		parts = append(parts, fmt.Sprintf("fms=%d", f.Nav.FMSAltitude))
	}
	if f.Nav.QNHValid {
		parts = append(parts, fmt.Sprintf("qnh=%.1f", f.Nav.QNH))
	}
	return strings.Join(parts, ";")
}

func kinematicsField(f *commb.Frame) string {
	if f.Format != commb.FormatTrackTurn && f.Format != commb.FormatHeadingSpeed {
		return ""
	}
	k := f.Kinematics
	var parts []string
	if k.HeadingValid {
		parts = append(parts, fmt.Sprintf("hdg=%.1f(%s)", k.Heading, k.HeadingType))
	}
	if k.RollValid {
		parts = append(parts, fmt.Sprintf("roll=%.1f", k.Roll))
	}
	if k.GSValid {
		parts = append(parts, fmt.Sprintf("gs=%.0f", k.GS.Selected))
	}
	if k.TASValid {
		parts = append(parts, fmt.Sprintf("tas=%.0f", k.TAS))
	}
	if k.IASValid {
		parts = append(parts, fmt.Sprintf("ias=%.0f", k.IAS))
	}
	if k.MachValid {
		parts = append(parts, fmt.Sprintf("mach=%.3f", k.Mach))
	}
	if k.BaroRateValid {
		parts = append(parts, fmt.Sprintf("barorate=%d", k.BaroRate))
	}
	return strings.Join(parts, ";")
}

func meteorologicalField(f *commb.Frame) string {
	if f.Format != commb.FormatMRAR {
		return ""
	}
	m := f.Met
	var parts []string
	if m.WindValid {
		parts = append(parts, fmt.Sprintf("wind=%.0f@%.0f", m.WindSpeed, m.WindDir))
	}
	if m.TempValid {
		parts = append(parts, fmt.Sprintf("temp=%.1f", m.Temperature))
	}
	if m.TurbulenceValid {
		parts = append(parts, fmt.Sprintf("turb=%s", m.Turbulence))
	}
	if m.HumidityValid {
		parts = append(parts, fmt.Sprintf("humidity=%.0f", m.Humidity))
	}
	return strings.Join(parts, ";")
}
