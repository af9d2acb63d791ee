// @title Course Planner API
// @version 1.0
// @description Generates and serves course-day schedules from weekly rhythms, holidays and special sessions.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"courseplanner/config"
	_ "courseplanner/docs"
	"courseplanner/internal/adapters/email"
	"courseplanner/internal/adapters/lock"
	deliveryhttp "courseplanner/internal/delivery/http"
	"courseplanner/internal/delivery/http/controllers"
	"courseplanner/internal/delivery/http/middleware"
	"courseplanner/internal/domain"
	"courseplanner/internal/repository/postgres"
	"courseplanner/internal/schedule"
	"courseplanner/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}

	locker, closeLocker, err := newLocker(cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	generator := schedule.NewGenerator(schedule.Options{
		Location: cfg.Schedule.Location,
		MaxDays:  cfg.Schedule.MaxDays,
		Logger:   logger,
	})
	scheduleService := services.NewScheduleService(services.ScheduleRepositories{
		Courses:         postgres.NewCourseRepository(db),
		Programs:        postgres.NewProgramRepository(db),
		Rhythms:         postgres.NewRhythmRepository(db),
		Holidays:        postgres.NewHolidayRepository(db),
		SpecialSessions: postgres.NewSpecialSessionRepository(db),
		CourseDays:      postgres.NewCourseDayRepository(db),
	}, locker, emailService, generator, services.ScheduleConfig{
		TeachingUnitMinutes: cfg.Schedule.TeachingUnitMinutes,
		HorizonSlackDays:    cfg.Schedule.HorizonSlackDays,
		Timeout:             cfg.RequestTimeout,
	}, logger)

	scheduleController := controllers.NewScheduleController(logger, scheduleService, cfg.Schedule.Location)
	mux := deliveryhttp.NewRouter(scheduleController, deliveryhttp.RouterConfig{
		RegenerateRateLimit: cfg.RegenerateRateLimit,
	})
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "timezone", cfg.Schedule.Timezone)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLocker(cfg *config.Config, logger *slog.Logger) (domain.CourseLocker, func(), error) {
	if cfg.Lock.Backend != config.LockBackendRedis {
		return lock.NewLocalLocker(), func() {}, nil
	}
	l, err := lock.NewRedisLocker(lock.RedisConfig{
		Addr:     cfg.Lock.RedisAddr,
		Password: cfg.Lock.RedisPassword,
		DB:       cfg.Lock.RedisDB,
		TTL:      cfg.Lock.TTL,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return l, func() { _ = l.Close() }, nil
}
