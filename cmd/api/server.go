package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/config"
	"github.com/jwalitptl/medlink-api/internal/email"
	"github.com/jwalitptl/medlink-api/internal/handler/appointment"
	"github.com/jwalitptl/medlink-api/internal/handler/assistant"
	"github.com/jwalitptl/medlink-api/internal/handler/consultation"
	"github.com/jwalitptl/medlink-api/internal/handler/doctor"
	"github.com/jwalitptl/medlink-api/internal/handler/health"
	"github.com/jwalitptl/medlink-api/internal/handler/labtest"
	"github.com/jwalitptl/medlink-api/internal/handler/practice"
	"github.com/jwalitptl/medlink-api/internal/handler/prescription"
	"github.com/jwalitptl/medlink-api/internal/handler/record"
	"github.com/jwalitptl/medlink-api/internal/handler/registration"
	"github.com/jwalitptl/medlink-api/internal/handler/session"
	"github.com/jwalitptl/medlink-api/internal/handler/wallet"
	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/repository/memory"
	"github.com/jwalitptl/medlink-api/internal/router"
	appointmentService "github.com/jwalitptl/medlink-api/internal/service/appointment"
	doctorService "github.com/jwalitptl/medlink-api/internal/service/doctor"
	eventService "github.com/jwalitptl/medlink-api/internal/service/event"
	labtestService "github.com/jwalitptl/medlink-api/internal/service/labtest"
	medicalService "github.com/jwalitptl/medlink-api/internal/service/medical"
	portalService "github.com/jwalitptl/medlink-api/internal/service/portal"
	prescriptionService "github.com/jwalitptl/medlink-api/internal/service/prescription"
	registrationService "github.com/jwalitptl/medlink-api/internal/service/registration"
	walletService "github.com/jwalitptl/medlink-api/internal/service/wallet"
	"github.com/jwalitptl/medlink-api/internal/worker"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/messaging"
	"github.com/jwalitptl/medlink-api/pkg/messaging/redis"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
	"github.com/jwalitptl/medlink-api/pkg/validator"
)

func runServer(ctx context.Context, configPaths []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configPaths...)
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	l := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		JSON:       cfg.Log.JSON,
	})
	if err := validator.RegisterGin(); err != nil {
		l.Error(err, "Failed to register validators")
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("medlink", reg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]health.Check{}

	// Event broker: Redis when configured, otherwise the log.
	broker, err := newBroker(ctx, cfg, l, checks)
	if err != nil {
		return err
	}
	defer broker.Close()
	events := eventService.NewEventService(
		messaging.NewEventPublisher(broker, m, messaging.WithChannel(cfg.Redis.Channel)), l)

	// AI gateway
	var gen ai.Generator = ai.Unavailable{}
	if gemini, err := ai.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model); err == nil {
		gen = gemini
		l.Info("AI gateway enabled", "model", cfg.AI.Model)
	} else if errors.Is(err, ai.ErrUnavailable) {
		l.Warn("No AI API key configured; assistant features will return fallbacks")
	} else {
		return err
	}
	gateway := ai.NewGateway(gen, ai.Config{
		RequestTimeout: cfg.AI.RequestTimeout,
		CacheTTL:       cfg.AI.CacheTTL,
	}, l, m)

	mailer := email.NewLogService(l)
	if cfg.Email.Enabled() {
		mailer = email.NewSMTPService(email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		})
	}

	// Initialize repositories
	doctorRepo := memory.NewDoctorRepository()
	catalogRepo := memory.NewCatalogRepository()
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)

	// Initialize services
	doctorSvc := doctorService.NewService(doctorRepo, gateway)
	appointmentSvc := appointmentService.NewService(memory.NewAppointmentRepository(), doctorRepo, events)
	prescriptionSvc := prescriptionService.NewService(memory.NewPrescriptionRepository(), gateway, events, m)
	medicalSvc := medicalService.NewService(memory.NewMedicalRecordRepository(), events)
	labtestSvc := labtestService.NewService(catalogRepo, gateway)
	walletSvc := walletService.NewService(memory.NewWalletRepository(), memory.NewInsuranceRepository(), catalogRepo, events)
	registrationSvc := registrationService.NewService(memory.NewRegistrationRepository(), mailer, events, l)
	portalSvc := portalService.NewService(portalService.Deps{
		Sessions:      sessionRepo,
		Doctors:       doctorSvc,
		Appointments:  appointmentSvc,
		Prescriptions: prescriptionSvc,
		Records:       medicalSvc,
		Labs:          labtestSvc,
		Assistant:     gateway,
		Metrics:       m,
	})

	simulator := worker.NewOrderProgressWorker(prescriptionSvc, worker.OrderProgressConfig{
		Interval: cfg.Simulator.Interval,
		Seed:     cfg.Simulator.Seed,
	}, l, m)
	prescriptionSvc.OnOrderPlaced(simulator.Wake)

	// Setup router
	r := router.NewRouter(l, m, portalSvc,
		health.NewHandler(reg, checks),
		[]router.Handler{
			session.NewHandler(portalSvc),
			doctor.NewHandler(doctorSvc, portalSvc),
			appointment.NewHandler(appointmentSvc),
			consultation.NewHandler(portalSvc),
			practice.NewHandler(appointmentSvc, prescriptionSvc),
			prescription.NewHandler(prescriptionSvc, portalSvc),
			record.NewHandler(medicalSvc),
			labtest.NewHandler(labtestSvc, portalSvc),
			assistant.NewHandler(portalSvc),
			wallet.NewHandler(walletSvc),
			registration.NewHandler(registrationSvc),
		},
		router.RouterConfig{
			Mode:             cfg.Server.Mode,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:        cfg.RateLimit.Burst,
			CORSConfig:       corsConfig(cfg.CORS),
			RequestTimeout:   cfg.AI.RequestTimeout + 5*time.Second,
		})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go simulator.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		l.Info("Starting server", "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		l.Error(err, "Server failed")
		return err
	case <-ctx.Done():
	}
	l.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error(err, "Server forced to shutdown")
		return err
	}

	l.Info("Server exited properly")
	return nil
}

func newBroker(ctx context.Context, cfg *config.Config, l *logger.Logger, checks map[string]health.Check) (messaging.Broker, error) {
	if cfg.Redis.URL == "" {
		return messaging.NewLogBroker(l), nil
	}

	b, err := redis.NewRedisBroker(ctx, redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		RetryBackoff: cfg.Redis.RetryBackoff,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, l.Zerolog())
	if err != nil {
		l.Error(err, "Failed to connect to Redis")
		return nil, err
	}
	checks["redis"] = b.Ping
	l.Info("Publishing events to Redis", "channel", cfg.Redis.Channel)
	return b, nil
}

func corsConfig(c config.CORSConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(c.AllowedOrigins) > 0 {
		cors.AllowOrigins = c.AllowedOrigins
	}
	return cors
}
