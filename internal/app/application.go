package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"commbdecode/internal/addressbook"
	"commbdecode/internal/beast"
	"commbdecode/internal/commb"
	"commbdecode/internal/ingest"
	"commbdecode/internal/logging"
	"commbdecode/internal/report"
)

// Application wires a Beast-protocol frame source through the Comm-B
// classifier and out to a rotating CSV log.
type Application struct {
	config     Config
	logger     *logrus.Logger
	decoder    *beast.Decoder
	addrBook   *addressbook.Book
	reportW    *report.Writer
	logRotator *logging.LogRotator
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	stats struct {
		sync.Mutex
		frames     uint64
		classified uint64
		unresolved uint64
	}
}

// NewApplication creates a new application instance.
func NewApplication(config Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if config.AddressMaxAge <= 0 {
		config.AddressMaxAge = DefaultAddressMaxAge
	}

	return &Application{
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start starts the application and blocks until a shutdown signal
// arrives or the frame source is exhausted.
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("starting commbdecode")

	if err := app.initializeComponents(); err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	if err := app.run(errChan); err != nil {
		app.logger.WithError(err).Error("application error")
		return err
	}

	select {
	case <-sigChan:
		app.logger.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			app.logger.WithError(err).Error("frame source ended with error")
		} else {
			app.logger.Info("frame source exhausted")
		}
	}

	app.shutdown()
	return nil
}

// initializeComponents initializes all application components.
func (app *Application) initializeComponents() error {
	app.decoder = beast.NewDecoder(app.logger)
	app.addrBook = addressbook.New(app.config.AddressMaxAge)

	var err error
	app.logRotator, err = logging.NewLogRotator(app.config.LogDir, app.config.LogRotateUTC, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize log rotator: %w", err)
	}

	app.reportW = report.NewWriter(app.logRotator, app.logger)

	return nil
}

// openSource opens the configured Beast-protocol stream.
func (app *Application) openSource() (io.ReadCloser, error) {
	if app.config.InputFile != "" {
		f, err := os.Open(app.config.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		return f, nil
	}

	conn, err := net.Dial("tcp", app.config.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to dial beast source %s: %w", app.config.Source, err)
	}
	return conn, nil
}

// run starts the background goroutines that process frames and report
// statistics. errChan receives the frame source's terminal error (or
// nil on clean EOF) exactly once.
func (app *Application) run(errChan chan<- error) error {
	source, err := app.openSource()
	if err != nil {
		return err
	}

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		errChan <- app.readLoop(source)
	}()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.logRotator.Start(app.ctx)
	}()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.reportStatistics()
	}()

	app.logger.Info("all components started successfully")
	return nil
}

// readLoop reads Beast frames from source, classifies any Comm-B
// payloads it finds, and feeds DF11/17/18 ICAO addresses to the address
// book so later Comm-B replies can be resolved.
func (app *Application) readLoop(source io.ReadCloser) error {
	defer source.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-app.ctx.Done():
			return nil
		default:
		}

		n, err := source.Read(buf)
		if n > 0 {
			app.processChunk(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (app *Application) processChunk(data []byte) {
	messages, err := app.decoder.Decode(data)
	if err != nil {
		app.logger.WithError(err).Debug("beast decode error")
		return
	}

	for _, msg := range messages {
		df := msg.GetDF()
		if df == 11 || df == 17 || df == 18 {
			if icao := msg.GetICAO(); icao != 0 {
				app.addrBook.Observe(icao)
			}
		}

		if !msg.IsCommB() {
			continue
		}
		raw, ok := msg.LongFrame()
		if !ok {
			continue
		}
		app.classifyFrame(raw, msg.Timestamp)
	}
}

func (app *Application) classifyFrame(raw [14]byte, timestamp time.Time) {
	app.stats.Lock()
	app.stats.frames++
	app.stats.Unlock()

	icao, ok := app.addrBook.Resolve(raw)
	if !ok {
		app.stats.Lock()
		app.stats.unresolved++
		app.stats.Unlock()
		return
	}

	frame, err := ingest.Frame(raw, icao)
	if err != nil {
		app.logger.WithError(err).Debug("failed to ingest comm-b frame")
		return
	}

	commb.Classify(frame)

	app.stats.Lock()
	if frame.IsClassified() {
		app.stats.classified++
	}
	app.stats.Unlock()

	rec := report.Record{ICAO: icao, Frame: frame, Timestamp: timestamp}
	if err := app.reportW.WriteRecord(rec); err != nil {
		app.logger.WithError(err).Debug("failed to write comm-b record")
	}
}

// reportStatistics reports processing statistics periodically.
func (app *Application) reportStatistics() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ticker.C:
			app.stats.Lock()
			frames, classified, unresolved := app.stats.frames, app.stats.classified, app.stats.unresolved
			app.stats.Unlock()

			app.logger.WithFields(logrus.Fields{
				"frames":     frames,
				"classified": classified,
				"unresolved": unresolved,
			}).Info("comm-b processing statistics")
		}
	}
}

// shutdown gracefully shuts down the application.
func (app *Application) shutdown() {
	app.logger.Info("shutting down application")
	app.cancel()

	done := make(chan struct{})
	go func() {
		app.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		app.logger.Info("all goroutines finished")
	case <-time.After(5 * time.Second):
		app.logger.Warn("shutdown timeout, forcing exit")
	}

	if app.logRotator != nil {
		app.logRotator.Close()
	}

	app.logger.Info("shutdown completed")
}
