// Package logging provides date-rotated, gzip-compressed log files for
// the classified Comm-B result stream.
package logging

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogRotator writes to a date-stamped file under logDir, rolling over to
// a new file and gzip-compressing the previous one whenever the date
// changes.
type LogRotator struct {
	logDir      string
	useUTC      bool
	logger      *logrus.Logger
	currentFile *os.File
	currentDate string
	mutex       sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewLogRotator creates logDir if needed and opens today's log file.
func NewLogRotator(logDir string, useUTC bool, logger *logrus.Logger) (*LogRotator, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	rotator := &LogRotator{
		logDir: logDir,
		useUTC: useUTC,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := rotator.rotateLogFile(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize log file: %w", err)
	}

	return rotator, nil
}

// Start runs the rotation scheduler until ctx is cancelled or Close is
// called. Intended to run in its own goroutine alongside the classifier
// pipeline.
func (r *LogRotator) Start(ctx context.Context) {
	r.logger.Info("starting log rotator")

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("log rotator stopping")
			return
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.checkRotation()
		}
	}
}

func (r *LogRotator) checkRotation() {
	now := r.now()
	currentDate := now.Format("2006-01-02")

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.currentDate != currentDate {
		r.logger.WithFields(logrus.Fields{
			"old_date": r.currentDate,
			"new_date": currentDate,
		}).Info("rotating log file")

		if err := r.rotateLogFile(); err != nil {
			r.logger.WithError(err).Error("failed to rotate log file")
		}
	}
}

func (r *LogRotator) now() time.Time {
	if r.useUTC {
		return time.Now().UTC()
	}
	return time.Now()
}

func (r *LogRotator) rotateLogFile() error {
	newDate := r.now().Format("2006-01-02")

	if r.currentFile != nil {
		oldFile := r.currentFile
		oldDate := r.currentDate

		if err := oldFile.Close(); err != nil {
			r.logger.WithError(err).Error("failed to close old log file")
		}

		go r.compressLogFile(oldDate)
	}

	filename := fmt.Sprintf("commb_%s.log", newDate)
	path := filepath.Join(r.logDir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file %s: %w", path, err)
	}

	r.currentFile = file
	r.currentDate = newDate

	r.logger.WithField("file", path).Info("created new log file")
	return nil
}

func (r *LogRotator) compressLogFile(date string) {
	logFile := filepath.Join(r.logDir, fmt.Sprintf("commb_%s.log", date))
	gzipFile := filepath.Join(r.logDir, fmt.Sprintf("commb_%s.log.gz", date))

	r.logger.WithFields(logrus.Fields{
		"source": logFile,
		"target": gzipFile,
	}).Info("compressing log file")

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		r.logger.WithField("file", logFile).Debug("log file doesn't exist, skipping compression")
		return
	}

	src, err := os.Open(logFile)
	if err != nil {
		r.logger.WithError(err).WithField("file", logFile).Error("failed to open source file for compression")
		return
	}
	defer src.Close()

	dst, err := os.Create(gzipFile)
	if err != nil {
		r.logger.WithError(err).WithField("file", gzipFile).Error("failed to create compressed file")
		return
	}
	defer dst.Close()

	gzWriter := gzip.NewWriter(dst)
	gzWriter.Name = filepath.Base(logFile)
	gzWriter.ModTime = time.Now()

	if _, err := io.Copy(gzWriter, src); err != nil {
		r.logger.WithError(err).Error("failed to compress log file")
		return
	}
	if err := gzWriter.Close(); err != nil {
		r.logger.WithError(err).Error("failed to close gzip writer")
		return
	}
	if err := dst.Close(); err != nil {
		r.logger.WithError(err).Error("failed to close compressed file")
		return
	}

	if err := os.Remove(logFile); err != nil {
		r.logger.WithError(err).WithField("file", logFile).Error("failed to remove original log file")
		return
	}

	r.logger.WithField("file", gzipFile).Info("log file compressed successfully")
}

// GetWriter returns the currently open log file for writers to append to.
func (r *LogRotator) GetWriter() (io.Writer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.currentFile == nil {
		return nil, fmt.Errorf("no current log file")
	}
	return r.currentFile, nil
}

// Close stops the scheduler and closes the current log file.
func (r *LogRotator) Close() error {
	r.logger.Info("closing log rotator")
	r.cancel()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.currentFile != nil {
		if err := r.currentFile.Close(); err != nil {
			r.logger.WithError(err).Error("failed to close current log file")
			return err
		}
		r.currentFile = nil
	}
	return nil
}

// GetCurrentLogFile returns the path of the file currently being written.
func (r *LogRotator) GetCurrentLogFile() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.currentDate == "" {
		return ""
	}
	return filepath.Join(r.logDir, fmt.Sprintf("commb_%s.log", r.currentDate))
}

// GetLogFiles lists all log files, compressed or not, under logDir.
func (r *LogRotator) GetLogFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(r.logDir, "commb_*.log*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}
	return files, nil
}

// CleanupOldLogs removes log files (other than the current one) whose
// modification time is older than maxDays.
func (r *LogRotator) CleanupOldLogs(maxDays int) error {
	if maxDays <= 0 {
		return fmt.Errorf("maxDays must be positive")
	}

	files, err := r.GetLogFiles()
	if err != nil {
		return fmt.Errorf("failed to get log files: %w", err)
	}

	var cutoff time.Time
	if r.useUTC {
		cutoff = time.Now().UTC().AddDate(0, 0, -maxDays)
	} else {
		cutoff = time.Now().AddDate(0, 0, -maxDays)
	}

	removed := 0
	current := r.GetCurrentLogFile()
	for _, file := range files {
		if file == current {
			continue
		}

		info, err := os.Stat(file)
		if err != nil {
			r.logger.WithError(err).WithField("file", file).Warn("failed to stat log file")
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				r.logger.WithError(err).WithField("file", file).Error("failed to remove old log file")
			} else {
				r.logger.WithField("file", file).Info("removed old log file")
				removed++
			}
		}
	}

	r.logger.WithField("count", removed).Info("cleaned up old log files")
	return nil
}
