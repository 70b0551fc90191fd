/*

This file contains the normalized pool record every adapter produces and the
aggregate shape handed to the presentation layer.

*/

package types

import "time"

// LabeledValue is a single display row: a label plus the numeric value behind
// it. Value is always the machine-usable number (USD for prices, staking and
// rewards; percent for ROI rows); Display is the pre-formatted string the
// presentation layer renders.
type LabeledValue struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Link is an informational reference attached to a pool.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PoolMetrics is the normalized output of one adapter fetch. The slice fields
// are never nil: an adapter with nothing to report returns an empty slice so
// consumers can range without nil checks.
type PoolMetrics struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`

	// APR is the annualized percentage return formatted to four fraction
	// digits, e.g. "36.1000".
	APR string `json:"apr"`

	Prices  []LabeledValue `json:"prices"`
	Staking []LabeledValue `json:"staking"`
	Rewards []LabeledValue `json:"rewards"`
	ROIs    []LabeledValue `json:"rois"`
	Links   []Link         `json:"links"`

	Risk *RiskAssessment `json:"risk,omitempty"`
}

// Staking row positions. Every adapter emits the pool-wide total first and
// the caller's own stake second.
const (
	StakingPoolTotalIndex = 0
	StakingYourTotalIndex = 1
)

// ROI row positions within PoolMetrics.ROIs.
const (
	ROIHourlyIndex = 0
	ROIDailyIndex  = 1
	ROIWeeklyIndex = 2
)

// WeeklyROI returns the weekly ROI percentage for this pool, or 0 if the
// adapter produced no ROI rows.
func (p PoolMetrics) WeeklyROI() float64 {
	if len(p.ROIs) <= ROIWeeklyIndex {
		return 0
	}
	return p.ROIs[ROIWeeklyIndex].Value
}

// YourStakeUSD returns the caller's staked USD value, or 0 if the adapter
// produced no caller staking row.
func (p PoolMetrics) YourStakeUSD() float64 {
	if len(p.Staking) <= StakingYourTotalIndex {
		return 0
	}
	return p.Staking[StakingYourTotalIndex].Value
}

// AggregateResult is the merged outcome of one refresh across all registered
// adapters. Pools contains only the adapters that fetched successfully;
// failed adapters are absent, never represented by an error.
type AggregateResult struct {
	Pools []PoolMetrics `json:"pools"`

	// TotalWeeklyReturn is the dollar-denominated weekly yield the caller is
	// currently earning across all successfully fetched pools.
	TotalWeeklyReturn float64 `json:"total_weekly_return"`

	// ClaimableRewards holds, per pool, the first reward row whose USD value
	// strictly exceeds the claimable threshold.
	ClaimableRewards []LabeledValue `json:"claimable_rewards"`

	FetchedAt time.Time `json:"fetched_at"`
}
