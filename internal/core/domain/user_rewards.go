package domain

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// UserRewards aggregates a user's lifetime issuance and redemption.
type UserRewards struct {
	Address          solana.PublicKey `json:"address"`
	Bump             uint8            `json:"bump"`
	User             solana.PublicKey `json:"user"`
	TotalEarned      uint64           `json:"total_earned"`
	TotalRedeemed    uint64           `json:"total_redeemed"`
	TransactionCount uint64           `json:"transaction_count"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsEmpty reports whether the record still holds its freshly created defaults.
func (u *UserRewards) IsEmpty() bool {
	return u.User.IsZero() && u.TotalEarned == 0 && u.TotalRedeemed == 0 && u.TransactionCount == 0
}

// RecordEarned credits one issued reward.
func (u *UserRewards) RecordEarned(reward uint64) error {
	earned, err := CheckedAdd(u.TotalEarned, reward)
	if err != nil {
		return err
	}
	count, err := CheckedAdd(u.TransactionCount, 1)
	if err != nil {
		return err
	}
	u.TotalEarned = earned
	u.TransactionCount = count
	return nil
}

// RecordRedeemed adds a burned amount to the redemption total.
func (u *UserRewards) RecordRedeemed(amount uint64) error {
	redeemed, err := CheckedAdd(u.TotalRedeemed, amount)
	if err != nil {
		return err
	}
	u.TotalRedeemed = redeemed
	return nil
}

// UserStats is the read-only view combining lifetime totals with the live
// token balance.
type UserStats struct {
	User             string `json:"user"`
	TotalEarned      uint64 `json:"total_earned"`
	TotalRedeemed    uint64 `json:"total_redeemed"`
	CurrentBalance   uint64 `json:"current_balance"`
	TransactionCount uint64 `json:"transaction_count"`
}

// RedeemResult is returned to the caller of a successful redemption.
type RedeemResult struct {
	User             string    `json:"user"`
	Amount           uint64    `json:"amount"`
	RemainingBalance uint64    `json:"remaining_balance"`
	Timestamp        time.Time `json:"timestamp"`
}
