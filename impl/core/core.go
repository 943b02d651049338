package core

import (
	"context"
	"log/slog"
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/stats"
)

// Archive is the optional long-term registration store queried by the
// operator API. Nil when the archive is disabled in config.
type Archive interface {
	ListRegistrations(ctx context.Context, limit int64) ([]entity.Registration, error)
	CountRegistrationsSince(ctx context.Context, since time.Time) (int64, error)
}

// Core backs the operator API. It owns nothing itself, it only reads
// the live registry, the counters and the archive.
type Core struct {
	registry *workflow.Registry
	counters *stats.Stats
	archive  Archive
	authKey  string
	log      *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRegistry(registry *workflow.Registry) {
	c.registry = registry
}

func (c *Core) SetStats(counters *stats.Stats) {
	c.counters = counters
}

func (c *Core) SetArchive(archive Archive) {
	c.archive = archive
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}
