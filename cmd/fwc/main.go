package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/fwcsim/fwc/internal/bridge"
	"github.com/fwcsim/fwc/internal/logging"
	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/recorder"
	"github.com/fwcsim/fwc/internal/replay"
	"github.com/fwcsim/fwc/internal/runtime"
	"github.com/fwcsim/fwc/internal/web"
)

// #region main
func main() {
	var (
		dbPath      = flag.String("db", envOr("FWC_DB", "fwc.db"), "path to the recording database")
		broker      = flag.String("broker", envOr("FWC_BROKER", ""), "MQTT broker URL, empty to run without a bus")
		clientID    = flag.String("client-id", "fwc", "MQTT client identifier")
		listen      = flag.String("listen", envOr("FWC_LISTEN", ":8080"), "status API listen address")
		logDir      = flag.String("log-dir", envOr("FWC_LOG_DIR", "logs"), "log directory")
		logLevel    = flag.String("log-level", envOr("FWC_LOG_LEVEL", "info"), "log level")
		tick        = flag.Duration("tick", 100*time.Millisecond, "simulation tick interval")
		fixturePath = flag.String("fixture", "", "drive inputs from a fixture instead of the broker, then exit")
		buss        = flag.Bool("buss", false, "backup speed scale installed")
		gpsInvalid  = flag.Bool("gps-alt-invalid", false, "GPS altitude selected and invalid")
	)
	flag.Parse()

	log, err := logging.New(logging.Options{Level: *logLevel, Dir: *logDir, Console: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}

	cfg := runtime.Config{
		BussInstalled:        *buss,
		GpsAltUsedAndInvalid: *gpsInvalid,
	}

	if err := run(log, cfg, *dbPath, *broker, *clientID, *listen, *fixturePath, *tick); err != nil {
		log.Error("fwc exited", "error", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run
func run(log *logging.Logger, cfg runtime.Config, dbPath, broker, clientID, listen, fixturePath string, tick time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var fixture *replay.Fixture
	if fixturePath != "" {
		f, err := replay.LoadFixture(fixturePath)
		if err != nil {
			return fmt.Errorf("load fixture: %w", err)
		}
		fixture = f
		cfg = f.Config.ToRuntimeConfig()
	}

	rec, err := recorder.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open recorder: %w", err)
	}
	defer rec.Close()

	rt, err := runtime.New(cfg)
	if err != nil {
		return fmt.Errorf("build runtime: %w", err)
	}

	nvm, err := rec.LoadNvm()
	if err != nil {
		return fmt.Errorf("load nvm: %w", err)
	}
	rt.RestoreNvm(nvm)

	runID, err := rec.BeginRun(cfg)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	log.Info("run started", "run_id", runID, "db", dbPath, "tick", tick.String())

	inbox := bridge.NewInbox()
	var pub bridge.Publisher
	if broker != "" && fixture == nil {
		client, err := bridge.NewRealClient(broker, clientID, inbox)
		if err != nil {
			return fmt.Errorf("connect broker: %w", err)
		}
		defer client.Close()
		pub = client
		log.Info("broker connected", "broker", broker)
	}

	status := web.NewStatus(runID)
	srv := &http.Server{
		Addr:    listen,
		Handler: handlers.LoggingHandler(os.Stdout, web.NewRouter(status)),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("status api", "error", err)
		}
	}()
	log.Info("status api listening", "addr", listen)

	// FWC_NO_RECORD drops tick traces without touching the run row.
	record := os.Getenv("FWC_NO_RECORD") == ""
	if !record {
		log.Warn("tick recording disabled via FWC_NO_RECORD")
	}

	seq := 0
	tickOnce := func(delta time.Duration, injections []params.Injection) {
		for _, inj := range injections {
			if err := rt.Store().Inject(inj); err != nil {
				log.Warn("injection dropped", "signal", inj.Signal, "error", err)
			}
		}

		rt.Tick(delta)
		snap := rt.Snapshot()
		status.Set(snap)

		if record {
			if err := rec.RecordTick(runID, seq, delta, snap, injections); err != nil {
				log.Error("record tick", "seq", seq, "error", err)
			}
		}

		if pub != nil {
			if err := pub.PublishSnapshot(snap); err != nil {
				log.Warn("publish snapshot", "error", err)
			}
		}
		for _, code := range snap.Warnings {
			if pub != nil {
				event := bridge.WarningEvent{
					Timestamp: time.Now().UTC(),
					Code:      code,
					Phase:     snap.FlightPhase,
				}
				if err := pub.PublishWarning(event); err != nil {
					log.Warn("publish warning", "code", code, "error", err)
				}
			}
			log.Info("warning raised", "code", code, "phase", snap.FlightPhase)
		}
		seq++
	}

	if fixture != nil {
		runFixture(ctx, fixture, tickOnce)
	} else {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
			}
			tickOnce(tick, inbox.Drain())
		}
	}

	log.Info("shutting down", "run_id", runID, "ticks", seq)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("status api shutdown", "error", err)
	}

	if err := rec.SaveNvm(rt.NvmState()); err != nil {
		return fmt.Errorf("save nvm: %w", err)
	}
	if err := rec.CloseRun(runID); err != nil {
		return fmt.Errorf("close run: %w", err)
	}
	return nil
}

// runFixture feeds fixture steps through the tick path as fast as they
// will go. Step injections land on the step's first tick only.
func runFixture(ctx context.Context, f *replay.Fixture, tickOnce func(time.Duration, []params.Injection)) {
	for _, step := range f.Steps {
		ticks := step.Ticks
		if ticks <= 0 {
			ticks = 1
		}
		delta := 100 * time.Millisecond
		if step.DeltaMs > 0 {
			delta = time.Duration(step.DeltaMs) * time.Millisecond
		}
		for i := 0; i < ticks; i++ {
			if ctx.Err() != nil {
				return
			}
			inject := step.Inject
			if i > 0 {
				inject = nil
			}
			tickOnce(delta, inject)
		}
	}
}

// #endregion run

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
