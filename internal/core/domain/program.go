package domain

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

const (
	// MaxRewardRateBps caps the policy at 10% of the purchase amount.
	MaxRewardRateBps uint16 = 1000
	// BpsDenominator converts basis points to a fraction.
	BpsDenominator uint64 = 10000
	// DefaultRewardRateBps is applied at initialization (2%).
	DefaultRewardRateBps uint16 = 200
	// DefaultTokenDecimals matches the reward token minted at initialization.
	DefaultTokenDecimals uint8 = 6
	// MaxTokenDecimals bounds the mint precision.
	MaxTokenDecimals uint8 = 9
)

// DerivedKey is an address computed from a namespace and identifying fields,
// together with the bump that proves the derivation.
type DerivedKey struct {
	Address solana.PublicKey `json:"address"`
	Bump    uint8            `json:"bump"`
}

// ProgramState is the singleton policy record. Its address doubles as the
// mint authority of the reward token.
type ProgramState struct {
	Address           solana.PublicKey `json:"address"`
	Bump              uint8            `json:"bump"`
	Mint              solana.PublicKey `json:"mint"`
	MintAuthority     solana.PublicKey `json:"mint_authority"`
	TotalMinted       uint64           `json:"total_minted"`
	TotalTransactions uint64           `json:"total_transactions"`
	RewardRateBps     uint16           `json:"reward_rate_bps"`
	Admin             solana.PublicKey `json:"admin"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IsAdmin reports whether caller may change the reward policy.
func (p *ProgramState) IsAdmin(caller solana.PublicKey) bool {
	return p.Admin.Equals(caller)
}

// MintCapability returns the proof the token ledger requires before minting.
func (p *ProgramState) MintCapability() MintAuthority {
	return MintAuthority{Address: p.Address, Bump: p.Bump}
}

// RecordIssuance adds one issued reward to the running counters. Both sums
// are checked before either counter changes.
func (p *ProgramState) RecordIssuance(reward uint64) error {
	minted, err := CheckedAdd(p.TotalMinted, reward)
	if err != nil {
		return err
	}
	count, err := CheckedAdd(p.TotalTransactions, 1)
	if err != nil {
		return err
	}
	p.TotalMinted = minted
	p.TotalTransactions = count
	return nil
}
