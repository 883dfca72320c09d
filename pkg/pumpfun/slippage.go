package pumpfun

import (
	"math"

	"lukechampine.com/uint128"
)

const (
	// DefaultSlippageBasisPoints is the tolerance applied when a caller does
	// not supply one. 500 bps (5%) is a deliberate policy default, chosen to
	// survive the price movement typical of fresh launches.
	DefaultSlippageBasisPoints uint64 = 500

	basisPointDenominator = 10_000
)

// ApplyBuySlippage widens a cost ceiling upward:
//
//	maxCost = cost * (10000 + toleranceBps) / 10000
//
// Division truncates toward zero. The multiply runs on a 128-bit
// intermediate, so no input can overflow it; a result above the uint64
// range saturates at MaxUint64, which is still a valid ceiling.
func ApplyBuySlippage(cost, toleranceBps uint64) uint64 {
	if toleranceBps > math.MaxUint64-basisPointDenominator {
		if cost == 0 {
			return 0
		}
		return math.MaxUint64
	}
	widened := uint128.From64(cost).
		Mul64(basisPointDenominator + toleranceBps).
		Div64(basisPointDenominator)
	if widened.Hi != 0 {
		return math.MaxUint64
	}
	return widened.Lo
}

// ApplySellSlippage narrows an expected output downward:
//
//	minOutput = output * (10000 - toleranceBps) / 10000
//
// Division truncates toward zero. Tolerances above 10000 bps are rejected
// with ErrInvalidTolerance.
func ApplySellSlippage(output, toleranceBps uint64) (uint64, error) {
	if toleranceBps > basisPointDenominator {
		return 0, ErrInvalidTolerance
	}
	narrowed := uint128.From64(output).
		Mul64(basisPointDenominator - toleranceBps).
		Div64(basisPointDenominator)
	return narrowed.Lo, nil
}
