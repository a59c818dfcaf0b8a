package domain

import (
	"smartpay-rewards/pkg/apperror"

	"github.com/holiman/uint256"
)

// ValidateAmount rejects zero. Every other uint64 is a valid amount.
func ValidateAmount(amount uint64) error {
	if amount == 0 {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// ComputeReward returns floor(amount * rateBps / 10000). The product is
// formed in 256 bits so no purchase amount can wrap.
func ComputeReward(amount uint64, rateBps uint16) (uint64, error) {
	product := new(uint256.Int).Mul(uint256.NewInt(amount), uint256.NewInt(uint64(rateBps)))
	reward := product.Div(product, uint256.NewInt(BpsDenominator))

	if !reward.IsUint64() {
		return 0, apperror.ErrArithmeticOverflow()
	}
	if reward.IsZero() {
		return 0, apperror.ErrRewardTooSmall()
	}
	return reward.Uint64(), nil
}

// CheckedAdd adds two counters, failing instead of wrapping.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, apperror.ErrArithmeticOverflow()
	}
	return sum, nil
}

