package store

import (
	"context"
	"fmt"
	"log"
	"time"
)

// connectTimeout is deliberately short so a missing local database is
// detected quickly instead of stalling startup.
const connectTimeout = 2 * time.Second

type Config struct {
	URI        string
	Database   string
	Production bool
}

// Connect attempts the durable store first. When it is unreachable the
// behavior splits: production returns the error so the caller can exit,
// development falls back to an ephemeral in-process store.
func Connect(ctx context.Context, cfg Config) (OrderStore, error) {
	st, err := connectMongo(ctx, cfg.URI, cfg.Database, connectTimeout)
	if err == nil {
		log.Printf("Connected to MongoDB database %q", cfg.Database)
		return st, nil
	}

	if cfg.Production {
		return nil, fmt.Errorf("order store unreachable: %w", err)
	}

	log.Println("Order database not reachable, using in-memory store. Orders will not survive a restart.")
	return NewMemoryStore(), nil
}
