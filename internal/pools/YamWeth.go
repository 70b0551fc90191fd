/*

YAM/WETH Uniswap pair staked in the YAM incentivizer. Same staking layout as
the YAM/yCRV pool, but both pair assets are priced straight from the oracle.

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

type YamWeth struct {
	prices PriceSource
}

func NewYamWeth(prices PriceSource) *YamWeth {
	return &YamWeth{prices: prices}
}

func (a *YamWeth) Provider() string { return "yam.finance" }
func (a *YamWeth) Name() string     { return "YAM/WETH" }

func (a *YamWeth) Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error) {
	rewardPool, err := app.Contract(YAMWETHRewardPoolAddr, synthRewardsABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	pair, err := app.Contract(YAMWETHUniPairAddr, erc20ABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	yamToken, err := app.Contract(YAMTokenAddr, yamTokenABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	wethToken, err := app.Contract(WETHTokenAddr, erc20ABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	yamScale, err := readWei(ctx, yamToken, "yamsScalingFactor")
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalYAMInPair, err := readWei(ctx, yamToken, "balanceOf", mustAddr(YAMWETHUniPairAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	totalWETHInPair, err := readWei(ctx, wethToken, "balanceOf", mustAddr(YAMWETHUniPairAddr))
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

	totalStaked, err := readWei(ctx, pair, "balanceOf", mustAddr(YAMWETHRewardPoolAddr))
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

	weeklyReward, err := weeklyRewardEmission(ctx, rewardPool, time.Now())
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	priceMap, err := a.prices.LookupPrices(ctx, []string{SymbolYAM, SymbolWETH})
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	yamPrice, err := requiredPrice(priceMap, SymbolYAM)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	wethPrice, err := requiredPrice(priceMap, SymbolWETH)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	pairPrice, err := utils.SafeDiv(totalYAMInPair*yamPrice+totalWETHInPair*wethPrice, pairSupply)
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
			{Label: "WETH", Value: wethPrice, Display: utils.ToDollar(wethPrice)},
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
			{Title: "Pool", URL: "https://uniswap.info/pair/0x0f82e57804d0b1f6fab2370a43dcfad3c7cb239c"},
			{Title: "Staking", URL: "https://yam.finance/"},
		},
		Risk: &risk,
	}, nil
}
