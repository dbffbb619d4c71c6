package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/lunacal-app/lunacal-backend/internal/api"
	events_service "github.com/lunacal-app/lunacal-backend/internal/business/events"
	reminders_service "github.com/lunacal-app/lunacal-backend/internal/business/reminders"
	"github.com/lunacal-app/lunacal-backend/internal/config"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/database/calendars"
	"github.com/lunacal-app/lunacal-backend/internal/database/events"
	"github.com/lunacal-app/lunacal-backend/internal/database/reminders"
	"github.com/lunacal-app/lunacal-backend/internal/database/user"
	"github.com/lunacal-app/lunacal-backend/internal/notifications"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/fcm"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/jwt"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/oauth"
	"github.com/lunacal-app/lunacal-backend/internal/redis"
	"github.com/lunacal-app/lunacal-backend/internal/scheduler"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManager()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokensRepository(redisPool, config.SessionTTl())

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}
	usersRepository := user.NewRepository()
	calendarsRepository := calendars.NewRepository()
	eventsRepository := events.NewRepository()
	remindersRepository := reminders.NewRepository()

	eventsService := events_service.NewService(db, eventsRepository, remindersRepository)
	remindersService := reminders_service.NewService(db, remindersRepository, eventsRepository)

	fcmService, err := fcm.NewService(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize fcm service", "err", err)
	}

	sender := notifications.NewSender(db, logger, eventsRepository, calendarsRepository, usersRepository, fcmService)

	reminderScheduler := scheduler.New(logger, remindersService, sender, config.ReminderPollPeriod(), config.ReminderLookahead())
	if err := reminderScheduler.Enable(ctx); err != nil {
		logger.Fatalw("unable to start reminder scheduler", "err", err)
	}
	closer.Bind(reminderScheduler.Disable)

	cleanup := cron.New()
	if _, err := cleanup.AddFunc("@every "+config.SessionCleanupPeriod().String(), func() {
		if err := refreshTokens.DeleteExpired(ctx); err != nil {
			logger.Errorw("failed to clean up expired sessions", "err", err)
		}
	}); err != nil {
		logger.Fatalw("unable to schedule session cleanup", "err", err)
	}
	cleanup.Start()
	closer.Bind(func() { cleanup.Stop() })

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		calendarsRepository,
		eventsService,
		remindersService,
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
