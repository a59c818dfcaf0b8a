package dto

import (
	"time"

	"smartpay-rewards/internal/core/domain"
)

// ChallengeRequest is the request body for a login challenge.
type ChallengeRequest struct {
	Identity string `json:"identity" binding:"required,pubkey"`
}

// ChallengeResponse carries the message the wallet must sign.
type ChallengeResponse struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// LoginRequest is the request body for wallet login.
type LoginRequest struct {
	Identity  string `json:"identity" binding:"required,pubkey"`
	Nonce     string `json:"nonce" binding:"required,max=64"`
	Signature string `json:"signature" binding:"required,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// InitializeRequest is the request body for the one-time program setup.
// Omitted fields take the program defaults.
type InitializeRequest struct {
	Decimals        *uint8  `json:"decimals,omitempty"`
	MintAuthority   *string `json:"mint_authority,omitempty" binding:"omitempty,pubkey"`
	FreezeAuthority *string `json:"freeze_authority,omitempty" binding:"omitempty,pubkey"`
}

// UpdateRateRequest is the request body for a reward rate change. The rate
// is wider than the stored field so oversized values are reported as such.
type UpdateRateRequest struct {
	NewRateBps *uint32 `json:"new_rate_bps" binding:"required"`
}

// MintRequest is the request body for reward issuance.
type MintRequest struct {
	Amount         uint64  `json:"amount"`
	TransactionID  string  `json:"transaction_id" binding:"required"`
	TransactionKey *string `json:"transaction_key,omitempty" binding:"omitempty,pubkey"`
}

// RedeemRequest is the request body for redemption.
type RedeemRequest struct {
	Amount uint64 `json:"amount"`
}

// EventListQuery binds the event listing query string.
type EventListQuery struct {
	Kind     string `form:"kind" binding:"omitempty,oneof=REWARD_MINTED REWARD_REDEEMED REWARD_RATE_UPDATED PROGRAM_INITIALIZED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProgramStateResponse is the public view of the policy record.
type ProgramStateResponse struct {
	Address           string `json:"address"`
	Mint              string `json:"mint"`
	MintAuthority     string `json:"mint_authority"`
	Admin             string `json:"admin"`
	RewardRateBps     uint16 `json:"reward_rate_bps"`
	TotalMinted       uint64 `json:"total_minted"`
	TotalTransactions uint64 `json:"total_transactions"`
	UpdatedAt         string `json:"updated_at"`
}

// MintResponse is returned for a successful issuance.
type MintResponse struct {
	TransactionID  string `json:"transaction_id"`
	TransactionKey string `json:"transaction_key"`
	User           string `json:"user"`
	Amount         uint64 `json:"amount"`
	RewardAmount   uint64 `json:"reward_amount"`
	Timestamp      string `json:"timestamp"`
}

// RedeemResponse is returned for a successful redemption.
type RedeemResponse struct {
	User             string `json:"user"`
	Amount           uint64 `json:"amount"`
	RemainingBalance uint64 `json:"remaining_balance"`
	Timestamp        string `json:"timestamp"`
}

// TransactionResponse is the stored marker for one processed payment.
type TransactionResponse struct {
	Address       string `json:"address"`
	TransactionID string `json:"transaction_id"`
	User          string `json:"user"`
	Amount        uint64 `json:"amount"`
	RewardAmount  uint64 `json:"reward_amount"`
	IsProcessed   bool   `json:"is_processed"`
	Timestamp     string `json:"timestamp"`
}

// EventResponse is one entry of a user's notification log.
type EventResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Amount        uint64 `json:"amount"`
	RewardAmount  uint64 `json:"reward_amount,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// EventListResponse wraps a paginated event list.
type EventListResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToProgramStateResponse renders the program singleton with base58 keys.
func ToProgramStateResponse(s *domain.ProgramState) ProgramStateResponse {
	return ProgramStateResponse{
		Address:           s.Address.String(),
		Mint:              s.Mint.String(),
		MintAuthority:     s.MintAuthority.String(),
		Admin:             s.Admin.String(),
		RewardRateBps:     s.RewardRateBps,
		TotalMinted:       s.TotalMinted,
		TotalTransactions: s.TotalTransactions,
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
}

// ToMintResponse converts an issuance result to its API response.
func ToMintResponse(r *domain.MintResult) MintResponse {
	return MintResponse{
		TransactionID:  r.TransactionID,
		TransactionKey: r.TransactionKey.Address.String(),
		User:           r.User,
		Amount:         r.Amount,
		RewardAmount:   r.RewardAmount,
		Timestamp:      formatTime(r.Timestamp),
	}
}

// ToRedeemResponse converts a redemption result to its API response.
func ToRedeemResponse(r *domain.RedeemResult) RedeemResponse {
	return RedeemResponse{
		User:             r.User,
		Amount:           r.Amount,
		RemainingBalance: r.RemainingBalance,
		Timestamp:        formatTime(r.Timestamp),
	}
}

// ToTransactionResponse converts a processed transaction record to its API response.
func ToTransactionResponse(r *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		Address:       r.Address.String(),
		TransactionID: r.TransactionID,
		User:          r.User.String(),
		Amount:        r.Amount,
		RewardAmount:  r.RewardAmount,
		IsProcessed:   r.IsProcessed,
		Timestamp:     formatTime(r.Timestamp),
	}
}

// ToEventListResponse wraps one page of events with paging totals.
func ToEventListResponse(events []domain.RewardEvent, total int64, page, pageSize int) EventListResponse {
	items := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, EventResponse{
			ID:            ev.ID.String(),
			Kind:          string(ev.Kind),
			Amount:        ev.Amount,
			RewardAmount:  ev.RewardAmount,
			TransactionID: ev.TransactionID,
			CreatedAt:     formatTime(ev.CreatedAt),
		})
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return EventListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
