package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"maletas/internal/adapters/appsscript"
	"maletas/internal/adapters/badgerkv"
	httpadapter "maletas/internal/adapters/http"
	pg "maletas/internal/adapters/postgres"
	"maletas/internal/config"
	"maletas/internal/domain"
	"maletas/internal/ledger"
	"maletas/internal/ports"
	"maletas/internal/session"
	"maletas/internal/workers/expiry"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var kv ports.KV
	switch cfg.StoreDriver {
	case "postgres":
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("connecting to postgres")
		}
		defer db.Close()
		kv = db
	default:
		store, err := badgerkv.Open(cfg.BadgerPath)
		if err != nil {
			log.WithError(err).Fatal("opening badger store")
		}
		defer store.Close()
		kv = store
	}

	clock := ports.SystemClock{}
	policy := domainPolicy(cfg)

	led := ledger.New(clock, policy)
	store := session.NewStore(kv, clock, log)
	client := appsscript.New(appsscript.Config{
		Endpoint:     cfg.EndpointURL,
		Source:       cfg.SourceTag,
		SendTimeout:  cfg.SendTimeout,
		ProbeTimeout: cfg.ProbeTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		BackoffUnit:  cfg.BackoffUnit,
	}, clock, log)
	coord := session.NewCoordinator(led, store, client, clock, policy, cfg.MinRecords, log)

	if restored := coord.Restore(ctx); restored > 0 {
		log.WithField("records", restored).Info("working batch restored")
	}

	srv := httpadapter.New(coord)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	boundary := expiry.Boundary{
		Hour:   cfg.ExpiryHour,
		Minute: cfg.ExpiryMinute,
		Second: cfg.ExpirySecond,
	}
	go expiry.Run(ctx, coord, clock, boundary, cfg.ExpiryPoll, log)

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.WithField("addr", cfg.ListenAddr).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.WithError(err).Fatal("server error")
	}
}

func domainPolicy(cfg config.Config) domain.ShiftPolicy {
	return domain.ShiftPolicy{
		EarlyStartHour:    cfg.EarlyShiftStartHour,
		LateStartHour:     cfg.LateShiftStartHour,
		EarlyFinalizeHour: cfg.EarlyFinalizeHour,
		LateFinalizeHour:  cfg.LateFinalizeHour,
		EarlyLabel:        domain.ShiftLabel(cfg.EarlyShiftLabel),
		LateLabel:         domain.ShiftLabel(cfg.LateShiftLabel),
	}
}
