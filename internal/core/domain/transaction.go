package domain

import (
	"strings"
	"time"

	"smartpay-rewards/pkg/apperror"

	"github.com/gagliardetto/solana-go"
)

// MaxTransactionIDLength is the byte limit of an external transaction identifier.
const MaxTransactionIDLength = 64

// TransactionRecord is the write-once marker that a payment has earned its
// reward. Its address is derived from the transaction identifier.
type TransactionRecord struct {
	Address       solana.PublicKey `json:"address"`
	Bump          uint8            `json:"bump"`
	TransactionID string           `json:"transaction_id"`
	User          solana.PublicKey `json:"user"`
	Amount        uint64           `json:"amount"`
	RewardAmount  uint64           `json:"reward_amount"`
	Timestamp     time.Time        `json:"timestamp"`
	IsProcessed   bool             `json:"is_processed"`
}

// ValidateTransactionID enforces the identifier length limit in bytes and
// rejects NUL bytes.
func ValidateTransactionID(id string) error {
	if len(id) > MaxTransactionIDLength {
		return apperror.ErrTransactionIDTooLong()
	}
	// TEXT columns refuse NUL, so such an id could never be recorded.
	if strings.IndexByte(id, 0) >= 0 {
		return apperror.Validation("transaction id must not contain NUL bytes")
	}
	return nil
}

// MintResult is returned to the caller of a successful issuance.
type MintResult struct {
	TransactionID  string     `json:"transaction_id"`
	TransactionKey DerivedKey `json:"transaction_key"`
	User           string     `json:"user"`
	Amount         uint64     `json:"amount"`
	RewardAmount   uint64     `json:"reward_amount"`
	Timestamp      time.Time  `json:"timestamp"`
}
