package types

import (
	"math"

	"github.com/holiman/uint256"
)

// MulDiv returns floor(a*b/c) with a 256 bit intermediate. ok is false when c
// is zero or the quotient does not fit in 64 bits.
func MulDiv(a, b, c uint64) (uint64, bool) {
	if c == 0 {
		return 0, false
	}
	x := uint256.NewInt(a)
	x.Mul(x, uint256.NewInt(b))
	x.Div(x, uint256.NewInt(c))
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}

// CheckedAdd returns a+b, ok is false on overflow.
func CheckedAdd(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

// SaturatingAdd returns a+b clamped to MaxUint64.
func SaturatingAdd(a, b uint64) uint64 {
	if sum, ok := CheckedAdd(a, b); ok {
		return sum
	}
	return math.MaxUint64
}

// SplitHarvest divides a harvested amount into the owner and treasury parts.
// The treasury receives the remainder so both parts sum to harvested.
func SplitHarvest(harvested uint64) (owner uint64, treasury uint64) {
	owner, _ = MulDiv(harvested, OwnerShareBps, OwnerShareBps+TreasuryShareBps)
	treasury = harvested - owner
	return owner, treasury
}

// ProportionalShare returns floor(balance*pool/total).
func ProportionalShare(balance, pool, total uint64) (uint64, bool) {
	return MulDiv(balance, pool, total)
}

// TransferFee returns the fee withheld on a transfer of amount.
func TransferFee(amount uint64, feeBps uint16, maxFee uint64) uint64 {
	fee, ok := MulDiv(amount, uint64(feeBps), BasisPointsDenominator)
	if !ok || fee > maxFee {
		return maxFee
	}
	return fee
}
