package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/webclient-go/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

// run boots the session controller the way the web client does: load config,
// connect the persisted store, hydrate, and report the resulting state.
func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		redisClient, err = bootstrap.ConnectRedis(cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	ctrl, err := bootstrap.BuildSessionController(bootstrap.SessionDeps{
		Config:      cfg,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if err := ctrl.Hydrate(ctx); err != nil {
		return err
	}

	if sess, ok := ctrl.Current(); ok {
		logger.InfoContext(ctx, "session hydrated",
			"user_id", sess.UserID,
			"role", sess.Role,
			"user_type", sess.UserType)
	} else {
		logger.InfoContext(ctx, "no stored session; client is unauthenticated")
	}

	return nil
}
