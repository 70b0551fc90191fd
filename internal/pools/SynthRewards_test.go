package pools

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/farmscan/farmscan/internal/chain"
)

func TestWeeklyRewardEmissionActivePeriod(t *testing.T) {
	now := time.Now()
	backend := newFakeBackend()
	backend.respond(t, YearnCurveRewardAddr, synthRewardsABI, "periodFinish", big.NewInt(now.Unix()+3600))
	// 0.0001 tokens per second.
	backend.respond(t, YearnCurveRewardAddr, synthRewardsABI, "rewardRate", big.NewInt(1e14))

	rewardPool, err := chain.NewContext(backend, testAccount).Contract(YearnCurveRewardAddr, synthRewardsABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	weekly, err := weeklyRewardEmission(context.Background(), rewardPool, now)
	if err != nil {
		t.Fatalf("weeklyRewardEmission: %v", err)
	}
	want := 0.0001 * secondsPerWeek
	if math.Abs(weekly-want) > 1e-9 {
		t.Errorf("weekly emission = %v, want %v", weekly, want)
	}
}

func TestWeeklyRewardEmissionFinishedPeriod(t *testing.T) {
	now := time.Now()
	backend := newFakeBackend()
	backend.respond(t, YearnCurveRewardAddr, synthRewardsABI, "periodFinish", big.NewInt(now.Unix()-1))
	// rewardRate is deliberately unscripted: a finished period must not read it.

	rewardPool, err := chain.NewContext(backend, testAccount).Contract(YearnCurveRewardAddr, synthRewardsABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	weekly, err := weeklyRewardEmission(context.Background(), rewardPool, now)
	if err != nil {
		t.Fatalf("weeklyRewardEmission: %v", err)
	}
	if weekly != 0 {
		t.Errorf("weekly emission = %v, want 0 for finished period", weekly)
	}
}

func TestWeeklyRewardEmissionReadFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.fail(t, YearnCurveRewardAddr, synthRewardsABI, "periodFinish", errors.New("revert"))

	rewardPool, err := chain.NewContext(backend, testAccount).Contract(YearnCurveRewardAddr, synthRewardsABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	if _, err := weeklyRewardEmission(context.Background(), rewardPool, time.Now()); !errors.Is(err, chain.ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}
