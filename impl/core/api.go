package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/stats"
)

var errTokenMismatch = errors.New("api key mismatch")

// AuthenticateByToken checks the bearer token against the configured
// API key. The comparison is constant time so the key cannot be
// guessed byte by byte from response timing.
func (c *Core) AuthenticateByToken(token string) (*entity.Operator, error) {
	if c.authKey == "" {
		return nil, errors.New("api key not configured")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) != 1 {
		return nil, errTokenMismatch
	}

	return &entity.Operator{Name: "operator"}, nil
}

// ValidateToken adapts AuthenticateByToken for the WebSocket feed,
// which carries the token as a query param.
func (c *Core) ValidateToken(token string) (string, error) {
	op, err := c.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return op.Name, nil
}

func (c *Core) StatsSnapshot() stats.Snapshot {
	if c.counters == nil {
		return stats.Snapshot{}
	}

	live := 0
	if c.registry != nil {
		live = c.registry.Len()
	}
	return c.counters.Snapshot(live)
}

func (c *Core) SessionViews() []workflow.View {
	if c.registry == nil {
		return nil
	}
	return c.registry.Views()
}

func (c *Core) ArchiveEnabled() bool {
	return c.archive != nil
}

func (c *Core) ListRegistrations(ctx context.Context, limit int64) ([]entity.Registration, error) {
	if c.archive == nil {
		return nil, errors.New("registrations archive is disabled")
	}
	return c.archive.ListRegistrations(ctx, limit)
}

// CountRegistrationsSince reports how many registrations landed in the
// archive after the given moment. Used by the daily digest.
func (c *Core) CountRegistrationsSince(ctx context.Context, since time.Time) (int64, error) {
	if c.archive == nil {
		return 0, errors.New("registrations archive is disabled")
	}
	return c.archive.CountRegistrationsSince(ctx, since)
}
