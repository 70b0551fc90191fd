/*

mStable MUSD/WETH Balancer pool. MTA rewards are a fixed weekly emission
announced by mStable rather than an on-chain reward rate, so the ROI formula
divides the announced emission across the pool's share supply.

*/

package pools

import (
	"context"

	"github.com/farmscan/farmscan/internal/analyzer"
	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/logger"
	"github.com/farmscan/farmscan/internal/types"
	"github.com/farmscan/farmscan/internal/utils"
)

var poolLogger = logger.GetForComponent("pool_adapter")

// mtaWeeklyEmission is the announced MTA distribution to this pool per week.
const mtaWeeklyEmission = 50000.0

type MstableMusdWeth struct {
	prices PriceSource
}

func NewMstableMusdWeth(prices PriceSource) *MstableMusdWeth {
	return &MstableMusdWeth{prices: prices}
}

func (a *MstableMusdWeth) Provider() string { return "mStable" }
func (a *MstableMusdWeth) Name() string     { return "MUSD/WETH" }

func (a *MstableMusdWeth) Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error) {
	pool, err := app.Contract(MUSDWETHBPTAddr, balancerPoolABI)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalBPT, err := readWei(ctx, pool, "totalSupply")
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	if totalBPT == 0 {
		return adapterFail(a.Name(), ErrZeroSupply)
	}

	yourBPT, err := readWei(ctx, pool, "balanceOf", app.Account())
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalWETH, err := readWei(ctx, pool, "getBalance", mustAddr(WETHTokenAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	totalMUSD, err := readWei(ctx, pool, "getBalance", mustAddr(MUSDTokenAddr))
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	wethPerBPT, err := utils.SafeDiv(totalWETH, totalBPT)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	musdPerBPT, err := utils.SafeDiv(totalMUSD, totalBPT)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	mtaRewardPerBPT := mtaWeeklyEmission / totalBPT

	priceMap, err := a.prices.LookupPrices(ctx, []string{SymbolMUSD, SymbolMTA, SymbolWETH})
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	mtaPrice, err := requiredPrice(priceMap, SymbolMTA)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	musdPrice, err := requiredPrice(priceMap, SymbolMUSD)
	if err != nil {
		return adapterFail(a.Name(), err)
	}
	wethPrice, err := requiredPrice(priceMap, SymbolWETH)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	bptPrice := wethPerBPT*wethPrice + musdPerBPT*musdPrice

	weeklyROI, err := utils.SafeDiv(mtaRewardPerBPT*mtaPrice*100, bptPrice)
	if err != nil {
		return adapterFail(a.Name(), err)
	}

	poolLogger.Debug().
		Str("pool", a.Name()).
		Float64("totalBPT", totalBPT).
		Float64("bptPrice", bptPrice).
		Float64("weeklyROI", weeklyROI).
		Msg("Computed pool metrics")

	risk := analyzer.ClassifyRisk(analyzer.PoolTraits{
		ContractAudited: true,
		SplitPool:       true,
		EvenSplit:       true,
	})

	return types.PoolMetrics{
		Provider: a.Provider(),
		Name:     a.Name(),
		APR:      utils.ToFixed(weeklyROI*52, 4),
		Prices: []types.LabeledValue{
			{Label: "MTA", Value: mtaPrice, Display: utils.ToDollar(mtaPrice)},
			{Label: "mUSD", Value: musdPrice, Display: utils.ToDollar(musdPrice)},
			{Label: "WETH", Value: wethPrice, Display: utils.ToDollar(wethPrice)},
		},
		Staking: []types.LabeledValue{
			{Label: "Pool Total", Value: totalBPT * bptPrice, Display: utils.ToDollar(totalBPT * bptPrice)},
			{Label: "Your Total", Value: yourBPT * bptPrice, Display: utils.ToDollar(yourBPT * bptPrice)},
		},
		Rewards: []types.LabeledValue{},
		ROIs:    roiRows(weeklyROI),
		Links: []types.Link{
			{Title: "Info", URL: "https://medium.com/mstable/a-recap-of-mta-rewards-9729356a66dd"},
			{Title: "Balancer Pool", URL: "https://pools.balancer.exchange/#/pool/0xe036CCE08cf4E23D33bC6B18e53Caf532AFa8513"},
		},
		Risk: &risk,
	}, nil
}
