package pools

import (
	"context"
	"time"

	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/utils"
)

const secondsPerWeek = 7 * 24 * 60 * 60

// weeklyRewardEmission returns the reward tokens a Synthetix-style staking
// contract emits per week at its current rate. A finished reward period
// emits zero; a start time in the future is permitted and does not affect
// the rate read here.
func weeklyRewardEmission(ctx context.Context, rewardPool *chain.Contract, now time.Time) (float64, error) {
	periodFinish, err := rewardPool.Uint256(ctx, "periodFinish")
	if err != nil {
		return 0, err
	}
	if periodFinish.Int64() < now.Unix() {
		return 0, nil
	}

	rewardRate, err := rewardPool.Uint256(ctx, "rewardRate")
	if err != nil {
		return 0, err
	}
	ratePerSecond, err := utils.FromWei(rewardRate)
	if err != nil {
		return 0, err
	}

	return ratePerSecond * secondsPerWeek, nil
}
