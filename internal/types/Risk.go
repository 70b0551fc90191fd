/*

Static risk levels attached to pools. The ordering is display ordering only;
no arithmetic is ever performed on a RiskLevel.

*/

package types

// RiskLevel is an ordered severity used for display-color mapping.
type RiskLevel string

const (
	RiskNone    RiskLevel = "none"
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// RiskAssessment carries the two risk dimensions a pool is rated on.
type RiskAssessment struct {
	SmartContract   RiskLevel `json:"smart_contract"`
	ImpermanentLoss RiskLevel `json:"impermanent_loss"`
}

// Order returns the display rank of the level, higher meaning more severe.
// Unknown levels rank above everything so they are never hidden.
func (r RiskLevel) Order() int {
	switch r {
	case RiskNone:
		return 0
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskExtreme:
		return 4
	default:
		return 5
	}
}
