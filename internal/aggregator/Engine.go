/*

The aggregation engine dispatches every registered adapter concurrently
against one chain context, awaits each outcome independently, and folds only
the successes into an AggregateResult. A failed adapter is logged and
excluded; it never aborts the refresh or the other adapters' in-flight work,
and a refresh with zero successes still returns a valid empty result.

*/

package aggregator

import (
	"context"
	"fmt"
	"time"

	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/logger"
	"github.com/farmscan/farmscan/internal/pools"
	"github.com/farmscan/farmscan/internal/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClaimableThresholdUSD is the USD value a pool's first reward entry must
// strictly exceed to be listed as claimable.
const ClaimableThresholdUSD = 10.0

// Engine runs the registered adapters and merges their results.
type Engine struct {
	logger   zerolog.Logger
	adapters []pools.Adapter
}

// NewEngine creates an engine over a fixed adapter registry.
func NewEngine(adapters []pools.Adapter) (*Engine, error) {
	if len(adapters) == 0 {
		return nil, fmt.Errorf("adapter registry cannot be empty")
	}
	for i, adapter := range adapters {
		if adapter == nil {
			return nil, fmt.Errorf("adapter registry entry %d is nil", i)
		}
	}

	return &Engine{
		logger:   logger.GetForComponent("aggregation_engine"),
		adapters: adapters,
	}, nil
}

// outcome pairs one adapter's fetch result with its identity.
type outcome struct {
	provider string
	name     string
	metrics  types.PoolMetrics
	err      error
}

// Refresh fetches all pools concurrently and returns the merged snapshot.
// It resolves once every dispatched fetch has settled. Refresh never fails:
// adapter errors are contained here, logged with the adapter's identity, and
// surface to the caller only as absence from the result.
func (e *Engine) Refresh(ctx context.Context, app *chain.Context) types.AggregateResult {
	refreshID := uuid.New().String()
	started := time.Now()

	e.logger.Info().
		Str("refreshID", refreshID).
		Int("adapters", len(e.adapters)).
		Msg("Starting pool refresh")

	outcomes := make(chan outcome, len(e.adapters))
	for _, adapter := range e.adapters {
		go func(a pools.Adapter) {
			metrics, err := a.Fetch(ctx, app)
			outcomes <- outcome{provider: a.Provider(), name: a.Name(), metrics: metrics, err: err}
		}(adapter)
	}

	result := types.AggregateResult{
		Pools:            make([]types.PoolMetrics, 0, len(e.adapters)),
		ClaimableRewards: []types.LabeledValue{},
	}

	failures := 0
	for range e.adapters {
		oc := <-outcomes
		if oc.err != nil {
			failures++
			e.logger.Error().
				Err(oc.err).
				Str("refreshID", refreshID).
				Str("provider", oc.provider).
				Str("pool", oc.name).
				Msg("Adapter fetch failed, excluding pool from result")
			continue
		}
		result.Pools = append(result.Pools, oc.metrics)
	}

	// Merge is a commutative fold over the successes; completion order of
	// the adapters carries no meaning.
	for _, pool := range result.Pools {
		result.TotalWeeklyReturn += pool.WeeklyROI() / 100 * pool.YourStakeUSD()

		if len(pool.Rewards) > 0 && pool.Rewards[0].Value > ClaimableThresholdUSD {
			result.ClaimableRewards = append(result.ClaimableRewards, pool.Rewards[0])
		}
	}

	result.FetchedAt = time.Now().UTC()

	e.logger.Info().
		Str("refreshID", refreshID).
		Int("succeeded", len(result.Pools)).
		Int("failed", failures).
		Float64("totalWeeklyReturn", result.TotalWeeklyReturn).
		Dur("elapsed", time.Since(started)).
		Msg("Pool refresh completed")

	return result
}
