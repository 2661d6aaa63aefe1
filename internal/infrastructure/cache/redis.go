package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"practice-booking-service/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis backs session lookups, slot locks and the week occupancy cache; all
// of them sit on the request path, so socket timeouts stay short.
const (
	redisDialTimeout = 5 * time.Second
	redisIOTimeout   = 2 * time.Second
)

func RedisAddr(cfg config.RedisConfig) string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         RedisAddr(cfg),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisIOTimeout,
		WriteTimeout: redisIOTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", RedisAddr(cfg), err)
	}

	log.WithFields(logrus.Fields{"addr": RedisAddr(cfg), "db": cfg.DB}).Info("Connected to Redis")
	return client, nil
}
