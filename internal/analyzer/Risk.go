/*

This file maps a pool's static traits to risk severity levels and the fixed
explanation text shown alongside them. Classification is driven entirely by
attributes the adapter declares about its contracts, never by live chain data.

*/

package analyzer

import (
	"github.com/farmscan/farmscan/internal/types"
)

// RiskDimension names one of the two axes a pool is rated on.
type RiskDimension string

const (
	DimensionSmartContract   RiskDimension = "smart_contract"
	DimensionImpermanentLoss RiskDimension = "impermanent_loss"
)

// PoolTraits are the static attributes an adapter declares about its pool.
type PoolTraits struct {
	// ContractAudited indicates the staking/pool contracts passed a
	// professional audit.
	ContractAudited bool
	// ContractBattleTested indicates the contracts are derived from a widely
	// deployed, tested codebase but have not themselves been audited.
	ContractBattleTested bool
	// SplitPool indicates the staked asset is a multi-asset pool share, so
	// relative price movement between the assets causes impermanent loss.
	SplitPool bool
	// EvenSplit indicates the pool weights its assets evenly. Uneven pools
	// concentrate exposure and soften impermanent loss.
	EvenSplit bool
}

// ClassifyRisk converts declared pool traits to severity levels.
func ClassifyRisk(traits PoolTraits) types.RiskAssessment {
	assessment := types.RiskAssessment{
		SmartContract:   types.RiskHigh,
		ImpermanentLoss: types.RiskNone,
	}

	if traits.ContractAudited {
		assessment.SmartContract = types.RiskLow
	} else if traits.ContractBattleTested {
		assessment.SmartContract = types.RiskMedium
	}

	if traits.SplitPool {
		if traits.EvenSplit {
			assessment.ImpermanentLoss = types.RiskHigh
		} else {
			assessment.ImpermanentLoss = types.RiskMedium
		}
	}

	return assessment
}

// riskExplanations holds the fixed prose keyed by (dimension, level). Pairs
// without registered prose render with no tooltip text.
var riskExplanations = map[RiskDimension]map[types.RiskLevel]string{
	DimensionSmartContract: {
		types.RiskLow:    "This smart contract has been professionally audited.",
		types.RiskMedium: "This smart contract is based on a tested contract, but has not been audited.",
		types.RiskHigh:   "This smart contract is unaudited and experimental. Use at your own risk.",
	},
	DimensionImpermanentLoss: {
		types.RiskNone:   "This contract is not a split pool, so there is no risk of impermanent loss.",
		types.RiskMedium: "This is a unevenly split pool, impermanent loss can occur.",
		types.RiskHigh:   "This is a split pool, impermanent loss can occur.",
	},
}

// RiskExplanation returns the explanation string for a (dimension, level)
// pair. The second return is false when no prose is registered for the pair.
func RiskExplanation(dimension RiskDimension, level types.RiskLevel) (string, bool) {
	byLevel, ok := riskExplanations[dimension]
	if !ok {
		return "", false
	}
	text, ok := byLevel[level]
	return text, ok
}
