package registrations

import (
	"context"

	"OchiqMuloqot/entity"
)

type Core interface {
	ArchiveEnabled() bool
	ListRegistrations(ctx context.Context, limit int64) ([]entity.Registration, error)
}
