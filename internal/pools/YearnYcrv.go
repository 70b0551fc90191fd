/*

yCRV staked in the yearn Curve rewards pool, earning YFI. Single-asset
staking: the staked token's USD price is the Curve Y pool virtual price, and
there is no impermanent loss dimension.

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

type YearnYcrv struct {
	prices PriceSource
}

func NewYearnYcrv(prices PriceSource) *YearnYcrv {
	return &YearnYcrv{prices: prices}
}

func (a *YearnYcrv) Provider() string { return "yearn.finance" }
func (a *YearnYcrv) Name() string     { return "yCRV" }

func (a *YearnYcrv) Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error) {
	rewardPool, err := app.Contract(YearnCurveRewardAddr, synthRewardsABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	curvePool, err := app.Contract(CurveYPoolAddr, curvePoolABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalStaked, err := readWei(ctx, rewardPool, "totalSupply")
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
	earnedYFI, err := readWei(ctx, rewardPool, "earned", app.Account())
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	weeklyReward, err := weeklyRewardEmission(ctx, rewardPool, time.Now())
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	virtualPrice, err := readWei(ctx, curvePool, "get_virtual_price")
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	priceMap, err := a.prices.LookupPrices(ctx, []string{SymbolYFI})
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	yfiPrice, err := requiredPrice(priceMap, SymbolYFI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	rewardPerToken, err := utils.SafeDiv(weeklyReward, totalStaked)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	weeklyROI, err := utils.SafeDiv(rewardPerToken*yfiPrice*100, virtualPrice)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	poolLogger.Debug().
		Str("pool", a.Name()).
		Float64("totalStaked", totalStaked).
		Float64("virtualPrice", virtualPrice).
		Float64("weeklyROI", weeklyROI).
		Msg("Computed pool metrics")

	risk := analyzer.ClassifyRisk(analyzer.PoolTraits{
		ContractBattleTested: true,
	})

	return types.PoolMetrics{
		Provider: a.Provider(),
		Name:     a.Name(),
		APR:      utils.ToFixed(weeklyROI*52, 4),
		Prices: []types.LabeledValue{
			{Label: "YFI", Value: yfiPrice, Display: utils.ToDollar(yfiPrice)},
			{Label: "yCRV", Value: virtualPrice, Display: utils.ToDollar(virtualPrice)},
		},
		Staking: []types.LabeledValue{
			{Label: "Pool Total", Value: totalStaked * virtualPrice, Display: utils.ToDollar(totalStaked * virtualPrice)},
			{Label: "Your Total", Value: yourStaked * virtualPrice, Display: utils.ToDollar(yourStaked * virtualPrice)},
		},
		Rewards: []types.LabeledValue{
			{
				Label:   utils.ToFixed(earnedYFI, 4) + " YFI",
				Value:   earnedYFI * yfiPrice,
				Display: utils.ToDollar(earnedYFI * yfiPrice),
			},
		},
		ROIs: roiRows(weeklyROI),
		Links: []types.Link{
			{Title: "Info", URL: "https://medium.com/iearn/yfi-df84573db81"},
			{Title: "Curve Pool", URL: "https://www.curve.fi/iearn"},
			{Title: "Staking", URL: "https://ygov.finance/"},
		},
		Risk: &risk,
	}, nil
}
