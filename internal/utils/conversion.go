/*
This file contains common utility functions for converting chain-native
fixed-point integers into float64 values, with strict precision and
finiteness handling. Every adapter goes through these functions so rounding
behavior is identical across protocols.
*/

package utils

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Error definitions for zero-tolerance error handling
var (
	ErrInvalidPrecision = errors.New("precision is invalid")
	ErrAmountNil        = errors.New("amount is nil")
	ErrAmountNegative   = errors.New("amount is negative")
	ErrNotFinite        = errors.New("value is not finite")
	ErrConversionFailed = errors.New("conversion failed")
)

// WeiPrecision is the fixed-point precision used by ERC20 tokens and pool
// share tokens unless a contract declares otherwise.
const WeiPrecision = 18

// BigIntToFloat64 converts a chain-native fixed-point integer to float64 with
// proper precision handling.
func BigIntToFloat64(amount *big.Int, precision int) (float64, error) {
	if precision < 0 || precision > 18 {
		return 0, fmt.Errorf("%w: %d (must be between 0 and 18)", ErrInvalidPrecision, precision)
	}
	if amount == nil {
		return 0, ErrAmountNil
	}
	if amount.Sign() < 0 {
		return 0, ErrAmountNegative
	}

	decAmount := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromBigInt(amount))
	factor := sdkmath.LegacyNewDec(1)
	for i := 0; i < precision; i++ {
		factor = factor.Mul(sdkmath.LegacyNewDec(10))
	}

	result := decAmount.Quo(factor)
	resultFloat, err := result.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	if math.IsNaN(resultFloat) || math.IsInf(resultFloat, 0) {
		return 0, fmt.Errorf("%w: result is %f", ErrNotFinite, resultFloat)
	}

	return resultFloat, nil
}

// FromWei converts an 18-decimal fixed-point integer to float64.
func FromWei(amount *big.Int) (float64, error) {
	return BigIntToFloat64(amount, WeiPrecision)
}

// SafeDiv divides a by b, rejecting zero denominators and non-finite results
// so division guards are uniform across adapters.
func SafeDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrConversionFailed)
	}
	result := a / b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: result is %f", ErrNotFinite, result)
	}
	return result, nil
}
