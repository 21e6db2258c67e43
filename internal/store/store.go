package store

import (
	"context"
	"errors"
	"fmt"

	"pga-swindle/internal/config"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownBackend = errors.New("unknown_store_backend")
)

// BlobStore keeps one opaque snapshot blob per key.
type BlobStore interface {
	Save(ctx context.Context, key string, blob []byte) error
	// Load returns ErrNotFound when nothing is stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (BlobStore, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.Dir)
	case "memory":
		return NewMemoryStore(), nil
	case "postgres":
		st, err := NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		return st, nil
	case "mongo":
		st, err := NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
