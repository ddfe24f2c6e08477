package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"boxoffice/db"
	"boxoffice/entities"
	boxofficeHttp "boxoffice/http"
	"boxoffice/message"
	"boxoffice/message/command"
	"boxoffice/message/event"
	"boxoffice/message/outbox"
	"boxoffice/reconcile"
	"boxoffice/session"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Config struct {
	BindAddr          string
	SessionTTL        time.Duration
	ReconcileInterval time.Duration
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
	commandBus      *cqrs.CommandBus
	cfg             Config
}

func New(
	redisClient *redis.Client,
	conn db.DB,
	cfg Config,
) Service {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)

	commandBus := command.NewCommandBus(redisPublisher)

	venueRepo := db.NewVenueRepository(&conn)
	eventRepo := db.NewEventRepository(&conn)
	ticketTypeRepo := db.NewTicketTypeRepository(&conn)
	bookingRepo := db.NewBookingRepository(&conn)
	paymentRepo := db.NewPaymentRepository(&conn)
	transitionLogRepo := db.NewTransitionLogRepository(&conn)
	eventData := db.NewEventData(&conn)

	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	applier := reconcile.NewApplier(bookingRepo)

	commandsHandler := command.NewHandler(bookingRepo, paymentRepo, applier)
	eventsHandler := event.NewHandler(transitionLogRepo)

	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)
	commandProcessorConfig := command.NewCommandProcessorConfig(redisClient, watermillLogger)

	pgSubscriber := outbox.SubscribeForPGMessages(conn.Conn, watermillLogger)
	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		commandProcessorConfig,
		eventProcessorConfig,
		commandsHandler,
		eventsHandler,
		watermillLogger,
	)

	echoRouter := boxofficeHttp.NewHttpRouter(
		commandBus,
		sessions,
		eventData,
		venueRepo,
		eventRepo,
		ticketTypeRepo,
		bookingRepo,
		paymentRepo,
	)

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
		commandBus:      commandBus,
		cfg:             cfg,
	}
}

func (s Service) Run(ctx context.Context) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server should not report healthy before the router is ready
		<-s.watermillRouter.Running()

		err := s.echoRouter.Start(s.cfg.BindAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	errgrp.Go(func() error {
		<-s.watermillRouter.Running()

		return s.runReconcilePoller(ctx)
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}

// runReconcilePoller periodically kicks off a reconciliation run, so
// bookings whose payment arrived while a previous run was in flight are
// picked up without waiting for another webhook.
func (s Service) runReconcilePoller(ctx context.Context) error {
	if s.cfg.ReconcileInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cmd := entities.ReconcileBookings{
				Header: entities.NewEventHeader(),
			}
			if err := s.commandBus.Send(ctx, cmd); err != nil {
				log.FromContext(ctx).WithError(err).Error("Could not send reconcile command")
			}
		}
	}
}
