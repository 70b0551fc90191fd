package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/pools"
	"github.com/farmscan/farmscan/internal/types"
)

// stubAdapter returns a canned record or error without touching the chain.
type stubAdapter struct {
	provider string
	name     string
	metrics  types.PoolMetrics
	err      error
}

func (s stubAdapter) Provider() string { return s.provider }
func (s stubAdapter) Name() string     { return s.name }
func (s stubAdapter) Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error) {
	return s.metrics, s.err
}

func stubPool(name string, weeklyROI, yourStakeUSD float64, rewards ...types.LabeledValue) types.PoolMetrics {
	if rewards == nil {
		rewards = []types.LabeledValue{}
	}
	return types.PoolMetrics{
		Provider: "stub",
		Name:     name,
		Staking: []types.LabeledValue{
			{Label: "Pool Total", Value: yourStakeUSD * 100},
			{Label: "Your Total", Value: yourStakeUSD},
		},
		Rewards: rewards,
		ROIs: []types.LabeledValue{
			{Label: "Hourly", Value: weeklyROI / 7 / 24},
			{Label: "Daily", Value: weeklyROI / 7},
			{Label: "Weekly", Value: weeklyROI},
		},
	}
}

func poolNames(result types.AggregateResult) map[string]bool {
	names := make(map[string]bool, len(result.Pools))
	for _, p := range result.Pools {
		names[p.Name] = true
	}
	return names
}

func TestNewEngineRejectsInvalidRegistry(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Error("expected error for empty registry")
	}
	if _, err := NewEngine([]pools.Adapter{stubAdapter{name: "a"}, nil}); err == nil {
		t.Error("expected error for nil registry entry")
	}
}

func TestRefreshExcludesFailedAdapters(t *testing.T) {
	engine, err := NewEngine([]pools.Adapter{
		stubAdapter{provider: "stub", name: "alpha", metrics: stubPool("alpha", 0.7, 1000)},
		stubAdapter{provider: "stub", name: "beta", err: errors.New("rpc timeout")},
		stubAdapter{provider: "stub", name: "gamma", metrics: stubPool("gamma", 1.4, 500)},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	result := engine.Refresh(context.Background(), nil)

	if len(result.Pools) != 2 {
		t.Fatalf("got %d pools, want 2", len(result.Pools))
	}
	names := poolNames(result)
	if !names["alpha"] || !names["gamma"] || names["beta"] {
		t.Errorf("unexpected pool set %v", names)
	}

	// 0.7%/wk of $1000 plus 1.4%/wk of $500.
	want := 0.7/100*1000 + 1.4/100*500
	if diff := result.TotalWeeklyReturn - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalWeeklyReturn = %v, want %v", result.TotalWeeklyReturn, want)
	}
}

func TestRefreshAllAdaptersFailing(t *testing.T) {
	engine, err := NewEngine([]pools.Adapter{
		stubAdapter{name: "a", err: errors.New("down")},
		stubAdapter{name: "b", err: errors.New("down")},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	result := engine.Refresh(context.Background(), nil)

	if result.Pools == nil || len(result.Pools) != 0 {
		t.Errorf("Pools = %v, want empty non-nil slice", result.Pools)
	}
	if result.ClaimableRewards == nil || len(result.ClaimableRewards) != 0 {
		t.Errorf("ClaimableRewards = %v, want empty non-nil slice", result.ClaimableRewards)
	}
	if result.TotalWeeklyReturn != 0 {
		t.Errorf("TotalWeeklyReturn = %v, want 0", result.TotalWeeklyReturn)
	}
	if result.FetchedAt.IsZero() {
		t.Error("FetchedAt should be stamped even with no successes")
	}
}

func TestRefreshClaimableThresholdIsStrict(t *testing.T) {
	atThreshold := types.LabeledValue{Label: "10.0000 YAM", Value: 10.0}
	aboveThreshold := types.LabeledValue{Label: "10.0100 YAM", Value: 10.01}

	engine, err := NewEngine([]pools.Adapter{
		stubAdapter{name: "at", metrics: stubPool("at", 1, 100, atThreshold)},
		stubAdapter{name: "above", metrics: stubPool("above", 1, 100, aboveThreshold)},
		stubAdapter{name: "none", metrics: stubPool("none", 1, 100)},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	result := engine.Refresh(context.Background(), nil)

	if len(result.ClaimableRewards) != 1 {
		t.Fatalf("got %d claimable rewards, want 1", len(result.ClaimableRewards))
	}
	if result.ClaimableRewards[0].Label != aboveThreshold.Label {
		t.Errorf("claimable = %+v, want the above-threshold reward", result.ClaimableRewards[0])
	}
}

func TestRefreshToleratesSparsePools(t *testing.T) {
	// A pool with no ROI or staking rows contributes nothing to the total but
	// still appears in the result.
	sparse := types.PoolMetrics{
		Provider: "stub",
		Name:     "sparse",
		Staking:  []types.LabeledValue{},
		Rewards:  []types.LabeledValue{},
		ROIs:     []types.LabeledValue{},
	}

	engine, err := NewEngine([]pools.Adapter{
		stubAdapter{name: "sparse", metrics: sparse},
		stubAdapter{name: "full", metrics: stubPool("full", 2, 250)},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	result := engine.Refresh(context.Background(), nil)

	if len(result.Pools) != 2 {
		t.Fatalf("got %d pools, want 2", len(result.Pools))
	}
	want := 2.0 / 100 * 250
	if diff := result.TotalWeeklyReturn - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalWeeklyReturn = %v, want %v", result.TotalWeeklyReturn, want)
	}
}

func TestRefreshIsOrderIndependent(t *testing.T) {
	adapters := []pools.Adapter{
		stubAdapter{name: "a", metrics: stubPool("a", 0.5, 2000)},
		stubAdapter{name: "b", metrics: stubPool("b", 3.1, 75)},
		stubAdapter{name: "c", err: errors.New("flaky")},
		stubAdapter{name: "d", metrics: stubPool("d", 1.25, 400, types.LabeledValue{Label: "12 YAM", Value: 12})},
	}
	engine, err := NewEngine(adapters)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	first := engine.Refresh(context.Background(), nil)
	for i := 0; i < 5; i++ {
		again := engine.Refresh(context.Background(), nil)
		if again.TotalWeeklyReturn != first.TotalWeeklyReturn {
			t.Fatalf("run %d: TotalWeeklyReturn = %v, want %v", i, again.TotalWeeklyReturn, first.TotalWeeklyReturn)
		}
		if len(again.Pools) != len(first.Pools) {
			t.Fatalf("run %d: %d pools, want %d", i, len(again.Pools), len(first.Pools))
		}
		want := poolNames(first)
		for name := range poolNames(again) {
			if !want[name] {
				t.Fatalf("run %d: unexpected pool %q", i, name)
			}
		}
		if len(again.ClaimableRewards) != len(first.ClaimableRewards) {
			t.Fatalf("run %d: %d claimable rewards, want %d", i, len(again.ClaimableRewards), len(first.ClaimableRewards))
		}
	}
}
