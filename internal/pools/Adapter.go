/*

This file defines the contract every pool adapter implements and the failure
class adapters raise. An adapter encapsulates one protocol's contract layout
and ROI formula; the aggregation engine only ever sees the normalized
PoolMetrics record or an AdapterError.

*/

package pools

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/types"
	"github.com/farmscan/farmscan/internal/utils"
)

// PriceSource resolves asset symbols to current USD prices. Symbols the
// source cannot resolve are absent from the returned map.
type PriceSource interface {
	LookupPrices(ctx context.Context, symbols []string) (map[string]float64, error)
}

// Adapter fetches and normalizes the metrics of one liquidity pool.
type Adapter interface {
	// Provider is the protocol operating the pool, e.g. "mStable".
	Provider() string
	// Name identifies the pool within its provider, e.g. "MUSD/WETH".
	Name() string
	// Fetch reads the pool's on-chain state and returns a normalized record.
	// It performs only read calls and fails with an AdapterError on any
	// unrecoverable problem.
	Fetch(ctx context.Context, app *chain.Context) (types.PoolMetrics, error)
}

var (
	// ErrPriceUnavailable marks a required symbol missing from the price
	// oracle response.
	ErrPriceUnavailable = errors.New("required price unavailable")
	// ErrZeroSupply marks a pool whose share token has zero total supply;
	// per-share math would divide by zero.
	ErrZeroSupply = errors.New("pool has zero total supply")
)

// AdapterError is the failure class adapters raise for transport failures,
// missing prices, or internal invariant violations.
type AdapterError struct {
	Adapter string
	Err     error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %s: %v", e.Adapter, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func adapterFail(name string, err error) (types.PoolMetrics, error) {
	return types.PoolMetrics{}, &AdapterError{Adapter: name, Err: err}
}

// readWei reads a uint256 view method and converts it from 18-decimal fixed
// point. Every adapter reads through this single path so rounding behavior
// is identical across protocols.
func readWei(ctx context.Context, contract *chain.Contract, method string, args ...interface{}) (float64, error) {
	raw, err := contract.Uint256(ctx, method, args...)
	if err != nil {
		return 0, err
	}
	return utils.FromWei(raw)
}

// requiredPrice extracts a symbol's USD price from an oracle response,
// failing when the symbol was omitted. A missing price must never default to
// zero: that would silently zero out staking values and distort ROI.
func requiredPrice(prices map[string]float64, symbol string) (float64, error) {
	price, ok := prices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	return price, nil
}

// roiRows derives the hourly/daily/weekly ROI rows from the weekly ROI
// percentage. Rows are always derived, never computed independently, so the
// three values stay mutually consistent.
func roiRows(weeklyROI float64) []types.LabeledValue {
	hourly := weeklyROI / 7 / 24
	daily := weeklyROI / 7
	return []types.LabeledValue{
		{Label: "Hourly", Value: hourly, Display: utils.ToPercent(hourly)},
		{Label: "Daily", Value: daily, Display: utils.ToPercent(daily)},
		{Label: "Weekly", Value: weeklyROI, Display: utils.ToPercent(weeklyROI)},
	}
}

// DefaultRegistry returns the statically configured adapter set in display
// order. Registration is fixed configuration, not a plugin mechanism.
func DefaultRegistry(prices PriceSource) []Adapter {
	return []Adapter{
		NewMstableMusdWeth(prices),
		NewYamYcrv(prices),
		NewYamWeth(prices),
		NewYearnYcrv(prices),
	}
}
