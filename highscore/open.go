package highscore

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/redis/go-redis/v9"
)

// Open returns the store selected by cfg.HighScoreBackend. When Redis or
// Postgres is unreachable it logs a warning and falls back to the file store.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.HighScoreBackend {
	case "", "file":
		return NewFileStore(cfg.HighScorePath), nil
	case "redis":
		store, err := openRedis(ctx, cfg)
		if err != nil {
			log.Printf("[HIGHSCORE] Warning: %v. Falling back to %s.", err, cfg.HighScorePath)
			return NewFileStore(cfg.HighScorePath), nil
		}
		log.Printf("[HIGHSCORE] Using Redis list %s at %s", cfg.RedisKey, cfg.RedisAddr)
		return store, nil
	case "postgres":
		store, err := openPostgres(ctx, cfg)
		if err != nil {
			log.Printf("[HIGHSCORE] Warning: %v. Falling back to %s.", err, cfg.HighScorePath)
			return NewFileStore(cfg.HighScorePath), nil
		}
		log.Println("[HIGHSCORE] Using Postgres")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown high score backend %q", cfg.HighScoreBackend)
	}
}

func openRedis(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return NewRedisStore(client, cfg.RedisKey), nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*PostgresStore, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("BLOCKFALL_DATABASE_URL is not set")
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	store := NewPostgresStore(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
