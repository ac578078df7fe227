package connection

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// retryPolicy is an exponential backoff capped at maxRetries attempts.
func retryPolicy(ctx context.Context, maxRetries int) backoff.BackOff {
	if maxRetries < 1 {
		maxRetries = 1
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = time.Second
	exp.MaxInterval = 10 * time.Second
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxRetries-1)), ctx)
}

func notify(logger *zap.Logger, target string) backoff.Notify {
	return func(err error, next time.Duration) {
		logger.Warn("connection attempt failed",
			zap.String("target", target),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	}
}

func ConnectGORMWithRetry(ctx context.Context, cfg PostgresConfig, maxRetries int, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("connection")

	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = conn
		return nil
	}

	if err := backoff.RetryNotify(operation, retryPolicy(ctx, maxRetries), notify(logger, "postgres")); err != nil {
		return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, err)
	}

	logger.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("connection")

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	operation := func() error {
		return rdb.Ping(ctx).Err()
	}
	if err := backoff.RetryNotify(operation, retryPolicy(ctx, maxRetries), notify(logger, "redis")); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed after %d attempts: %w", maxRetries, err)
	}

	logger.Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// ConnectKafkaWithRetry waits until the broker accepts TCP connections and
// returns a writer that routes by message topic.
func ConnectKafkaWithRetry(ctx context.Context, broker string, maxRetries int, logger *zap.Logger) (*kafkago.Writer, error) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("connection")

	operation := func() error {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			return err
		}
		return conn.Close()
	}
	if err := backoff.RetryNotify(operation, retryPolicy(ctx, maxRetries), notify(logger, "kafka")); err != nil {
		return nil, fmt.Errorf("kafka connection failed after %d attempts: %w", maxRetries, err)
	}

	logger.Info("connected to kafka", zap.String("broker", broker))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		Transport: &kafkago.Transport{
			Dial: (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		},
	}, nil
}
