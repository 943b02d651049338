package dialog

import (
	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/internal/stats"
)

type Core interface {
	StatsSnapshot() stats.Snapshot
	SessionViews() []workflow.View
}
