package domain

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// EventKind names the notification emitted by a state change.
type EventKind string

const (
	EventRewardMinted   EventKind = "REWARD_MINTED"
	EventRewardRedeemed EventKind = "REWARD_REDEEMED"
	EventRateUpdated    EventKind = "REWARD_RATE_UPDATED"
	EventInitialized    EventKind = "PROGRAM_INITIALIZED"
)

// RewardEvent is appended inside the operation's transaction and published
// after commit.
type RewardEvent struct {
	ID            uuid.UUID        `json:"id"`
	Kind          EventKind        `json:"kind"`
	User          solana.PublicKey `json:"user"`
	Amount        uint64           `json:"amount"`
	RewardAmount  uint64           `json:"reward_amount,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewRewardMinted builds the issuance notification.
func NewRewardMinted(user solana.PublicKey, amount, reward uint64, transactionID string, at time.Time) *RewardEvent {
	return &RewardEvent{
		ID:            uuid.New(),
		Kind:          EventRewardMinted,
		User:          user,
		Amount:        amount,
		RewardAmount:  reward,
		TransactionID: transactionID,
		CreatedAt:     at,
	}
}

// NewRewardRedeemed builds the redemption notification.
func NewRewardRedeemed(user solana.PublicKey, amount uint64, at time.Time) *RewardEvent {
	return &RewardEvent{
		ID:        uuid.New(),
		Kind:      EventRewardRedeemed,
		User:      user,
		Amount:    amount,
		CreatedAt: at,
	}
}

// NewPolicyEvent records an administrative change; Amount carries the new rate.
func NewPolicyEvent(kind EventKind, admin solana.PublicKey, rateBps uint16, at time.Time) *RewardEvent {
	return &RewardEvent{
		ID:        uuid.New(),
		Kind:      kind,
		User:      admin,
		Amount:    uint64(rateBps),
		CreatedAt: at,
	}
}
