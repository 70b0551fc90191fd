/*

YAM/yCRV Uniswap pair staked in the YAM incentivizer. Two wrinkles relative
to a plain staking pool: YAM is a rebasing token, so earned amounts are
scaled by yamsScalingFactor, and the yCRV side is priced through the Curve Y
pool virtual price instead of the oracle.

*/

package pools

import (
	"context"
	"time"

	"github.com/farmscan/farmscan/internal/analyzer"
	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/types"
	"github.com/farmscan/farmscan/internal/utils"
)

type YamYcrv struct {
	prices PriceSource
}

func NewYamYcrv(prices PriceSource) *YamYcrv {
	return &YamYcrv{prices: prices}
}

func (a *YamYcrv) Provider() string { return "yam.finance" }
func (a *YamYcrv) Name() string     { return "YAM/yCRV" }

func (a *YamYcrv) Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error) {
	rewardPool, err := app.Contract(YAMYCRVRewardPoolAddr, synthRewardsABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	pair, err := app.Contract(YAMYCRVUniPairAddr, erc20ABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	yamToken, err := app.Contract(YAMTokenAddr, yamTokenABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	ycrvToken, err := app.Contract(YCRVTokenAddr, erc20ABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	curvePool, err := app.Contract(CurveYPoolAddr, curvePoolABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	yamScale, err := readWei(ctx, yamToken, "yamsScalingFactor")
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalYCRVInPair, err := readWei(ctx, ycrvToken, "balanceOf", mustAddr(YAMYCRVUniPairAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	totalYAMInPair, err := readWei(ctx, yamToken, "balanceOf", mustAddr(YAMYCRVUniPairAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	pairSupply, err := readWei(ctx, pair, "totalSupply")
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	if pairSupply == 0 {
		return adapterFail(a.Name(), ErrZeroSupply)
	}

	totalStaked, err := readWei(ctx, pair, "balanceOf", mustAddr(YAMYCRVRewardPoolAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	if totalStaked == 0 {
		return adapterFail(a.Name(), ErrZeroSupply)
	}

	yourStaked, err := readWei(ctx, rewardPool, "balanceOf", app.Account())
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	earnedRaw, err := readWei(ctx, rewardPool, "earned", app.Account())
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	earnedYAM := earnedRaw * yamScale

	now := time.Now()
	weeklyReward, err := weeklyRewardEmission(ctx, rewardPool, now)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	startTime, err := rewardPool.Uint256(ctx, "starttime")
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	if startTime.Int64() > now.Unix() {
		poolLogger.Debug().
			Str("pool", a.Name()).
			Int64("startsAt", startTime.Int64()).
			Msg("Reward pool has not started yet")
	}

	virtualPrice, err := readWei(ctx, curvePool, "get_virtual_price")
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	priceMap, err := a.prices.LookupPrices(ctx, []string{SymbolYAM})
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	yamPrice, err := requiredPrice(priceMap, SymbolYAM)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	pairPrice, err := utils.SafeDiv(totalYAMInPair*yamPrice+totalYCRVInPair*virtualPrice, pairSupply)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	rewardPerToken, err := utils.SafeDiv(weeklyReward, totalStaked)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	weeklyROI, err := utils.SafeDiv(rewardPerToken*yamPrice*100, pairPrice)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	poolLogger.Debug().
		Str("pool", a.Name()).
		Float64("totalStaked", totalStaked).
		Float64("pairPrice", pairPrice).
		Float64("weeklyROI", weeklyROI).
		Msg("Computed pool metrics")

	risk := analyzer.ClassifyRisk(analyzer.PoolTraits{
		ContractBattleTested: true,
		SplitPool:            true,
		EvenSplit:            true,
	})

	return types.PoolMetrics{
		Provider: a.Provider(),
		Name:     a.Name(),
		APR:      utils.ToFixed(weeklyROI*52, 4),
		Prices: []types.LabeledValue{
			{Label: "YAM", Value: yamPrice, Display: utils.ToDollar(yamPrice)},
			{Label: "UNIV2", Value: pairPrice, Display: utils.ToDollar(pairPrice)},
		},
		Staking: []types.LabeledValue{
			{Label: "Pool Total", Value: totalStaked * pairPrice, Display: utils.ToDollar(totalStaked * pairPrice)},
			{Label: "Your Total", Value: yourStaked * pairPrice, Display: utils.ToDollar(yourStaked * pairPrice)},
		},
		Rewards: []types.LabeledValue{
			{
				Label:   utils.ToFixed(earnedYAM, 4) + " YAM",
				Value:   earnedYAM * yamPrice,
				Display: utils.ToDollar(earnedYAM * yamPrice),
			},
		},
		ROIs: roiRows(weeklyROI),
		Links: []types.Link{
			{Title: "Info", URL: "https://medium.com/@yamfinance/yam-finance-d0ad577250c7"},
			{Title: "Pool", URL: "https://uniswap.info/pair/0x2c7a51a357d5739c5c74bf3c96816849d2c9f726"},
			{Title: "Staking", URL: "https://yam.finance/"},
		},
		Risk: &risk,
	}, nil
}
