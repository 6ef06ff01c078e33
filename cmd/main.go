package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samandr77/microservices/intranet/internal/api"
	"github.com/samandr77/microservices/intranet/internal/clients/directory"
	"github.com/samandr77/microservices/intranet/internal/clients/gomail"
	"github.com/samandr77/microservices/intranet/internal/clients/s3"
	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/events"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
	"github.com/samandr77/microservices/intranet/internal/repository/memory"
	pgrepo "github.com/samandr77/microservices/intranet/internal/repository/postgres"
	"github.com/samandr77/microservices/intranet/internal/service"
	"github.com/samandr77/microservices/intranet/internal/session"
	"github.com/samandr77/microservices/intranet/pkg/broker"
	"github.com/samandr77/microservices/intranet/pkg/config"
	"github.com/samandr77/microservices/intranet/pkg/job"
	"github.com/samandr77/microservices/intranet/pkg/logger"
	"github.com/samandr77/microservices/intranet/pkg/postgres"
)

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = time.Second
	shutdownTimeout   = 10 * time.Second
)

type identityStore interface {
	session.Authenticator
	service.IdentityRepository
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("create config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	var identities identityStore

	if cfg.Directory.URL != "" {
		identities = directory.NewClient(cfg.Directory)
		l.Info("using directory credential store", "url", cfg.Directory.URL)
	} else {
		identities, err = memory.NewIdentityRepository(fixtures.Accounts(), cfg.Session.BcryptCost)
		panicOnErr("create identity repository", err)
	}

	var (
		requestRepo      service.RequestRepository
		notificationRepo service.NotificationRepository
		messageRepo      service.MessageRepository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
		panicOnErr("connect to postgres", err)

		defer pool.Close()

		err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
		panicOnErr("up migrations", err)

		requestRepo = pgrepo.NewRequestRepository(pool)
		notificationRepo = pgrepo.NewNotificationRepository(pool)
		messageRepo = pgrepo.NewMessageRepository(pool)

		err = seed(ctx, requestRepo, notificationRepo, messageRepo)
		panicOnErr("seed fixtures", err)
	default:
		requestRepo = memory.NewRequestRepository(fixtures.Requests())
		notificationRepo = memory.NewNotificationRepository(fixtures.Notifications())
		messageRepo = memory.NewMessageRepository(fixtures.Messages())
	}

	hub := events.NewHub()
	stages := memory.NewStageRepository()

	var (
		opts        []service.RequestsOption
		messageOpts []service.ConversationsOption
	)

	if cfg.S3.Bucket != "" {
		storage, err := s3.New(ctx, cfg.S3)
		panicOnErr("create s3 client", err)

		opts = append(opts, service.WithAttachments(storage))
		messageOpts = append(messageOpts, service.WithMessageAttachments(storage))
	}

	requests := service.NewRequests(requestRepo, identities, stages, hub, cfg.Session.StageTTL, opts...)
	notifications := service.NewNotifications(notificationRepo, identities, hub)
	conversations := service.NewConversations(messageRepo, identities, notifications, hub, messageOpts...)

	hub.Subscribe(notifications.OnEvent)

	// Mail: kafka topic consumed in-process, or gomail directly
	{
		sender := service.NewMailSender(gomail.New(cfg.Mailer))

		switch {
		case cfg.Kafka.Enabled:
			producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
			defer producer.Close()

			consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.NotificationTopic)
			defer consumer.Close()

			eventHandler := events.NewEventHandler(sender)

			consumer.Handle(cfg.Kafka.NotificationTopic, eventHandler.SendMail)
			consumer.Consume(ctx)

			hub.Subscribe(service.NewMail(identities, events.NewKafkaQueue(producer)).OnEvent)
		case cfg.Mailer.Enabled:
			// SMTP runs off the request path
			queue := events.NewAsyncQueue(sender, cfg.Mailer.QueueSize, cfg.Mailer.SendTimeout).Start(ctx)
			defer queue.Stop()

			hub.Subscribe(service.NewMail(identities, queue).OnEvent)
		default:
			l.Info("mail dispatch disabled")
		}
	}

	manager := session.NewManager(identities, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.Session.LoginTimeout,
		session.WithAwayAfter(cfg.Session.AwayAfter))

	jobs := job.NewService().
		RegisterJob("delete expired sessions", cfg.Jobs.SessionCleanupInterval, manager.DeleteExpired).
		RegisterJob("delete expired staged decisions", cfg.Jobs.StageCleanupInterval, requests.DeleteExpiredStages)
	jobs.Start(ctx)

	h := api.NewHandler(service.NewAuth(manager), service.NewDirectory(identities, manager),
		notifications, requests, conversations, hub)
	mw := api.NewMiddleware(manager)

	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	go func() {
		var err error

		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.ServerCert, cfg.ServerKey)
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panic(err)
		}
	}()

	l.Info("server started", "port", cfg.HTTPPort, "storage", cfg.StorageDriver, "tls", cfg.TLSEnabled())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	// SSE streams end with the base context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("shutdown", "error", err)
	}

	jobs.Stop()
}

// seed loads the fixtures into an empty database. Rows that already exist are kept as they are.
func seed(
	ctx context.Context,
	requests service.RequestRepository,
	notifications service.NotificationRepository,
	messages service.MessageRepository,
) error {
	for _, r := range fixtures.Requests() {
		err := requests.CreateRequest(ctx, r)
		if err != nil && !errors.Is(err, entity.ErrAlreadyExists) {
			return fmt.Errorf("request %s: %w", r.ID, err)
		}
	}

	for _, n := range fixtures.Notifications() {
		err := notifications.CreateNotification(ctx, n)
		if err != nil && !errors.Is(err, entity.ErrAlreadyExists) {
			return fmt.Errorf("notification %s: %w", n.ID, err)
		}
	}

	for _, m := range fixtures.Messages() {
		err := messages.CreateMessage(ctx, m)
		if err != nil && !errors.Is(err, entity.ErrAlreadyExists) {
			return fmt.Errorf("message %s: %w", m.ID, err)
		}
	}

	return nil
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
