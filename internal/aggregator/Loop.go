package aggregator

import (
	"context"
	"time"

	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/logger"
)

// RunLoop refreshes on a fixed interval and on manual triggers until the
// context is cancelled. The first refresh runs immediately. Each completed
// refresh replaces the snapshot wholesale.
func RunLoop(ctx context.Context, engine *Engine, app *chain.Context, snapshots *SnapshotHolder, trigger <-chan struct{}, interval time.Duration) {
	loopLogger := logger.GetForComponent("refresh_loop")

	loopLogger.Info().Dur("interval", interval).Msg("Starting refresh loop")

	snapshots.Set(engine.Refresh(ctx, app))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			loopLogger.Info().Msg("Refresh loop stopped due to context cancellation")
			return
		case <-ticker.C:
			snapshots.Set(engine.Refresh(ctx, app))
		case <-trigger:
			loopLogger.Info().Msg("Manual refresh requested")
			snapshots.Set(engine.Refresh(ctx, app))
		}
	}
}
