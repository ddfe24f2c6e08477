package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"boxoffice/db"
	"boxoffice/message"
	"boxoffice/service"
	observability "boxoffice/trace"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logrus.InfoLevel)

	tp := observability.ConfigureTraceProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	conn.MigrateSchema()

	redisClient := message.NewRedisClient(os.Getenv("REDIS_ADDR"))
	defer redisClient.Close()

	cfg := service.Config{
		BindAddr:          envOr("BIND_ADDR", ":8080"),
		SessionTTL:        envDurationOr("SESSION_TTL", 30*time.Minute),
		ReconcileInterval: envDurationOr("RECONCILE_INTERVAL", 15*time.Second),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc := service.New(redisClient, conn, cfg)

	if err := svc.Run(ctx); err != nil {
		panic(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("Invalid duration, using default")
		return fallback
	}

	return d
}
