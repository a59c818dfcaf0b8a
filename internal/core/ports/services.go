package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
)

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(identity solana.PublicKey) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Identity solana.PublicKey
}

// ProcessedCache is the Redis-layer duplicate check (fast path) in front of
// the transaction record store.
type ProcessedCache interface {
	IsProcessed(ctx context.Context, recordKey solana.PublicKey) (bool, error)
	MarkProcessed(ctx context.Context, recordKey solana.PublicKey, ttl time.Duration) error
}

// ChallengeStore keeps single-use login nonces.
type ChallengeStore interface {
	Issue(ctx context.Context, identity solana.PublicKey, nonce string, ttl time.Duration) error
	// Consume deletes the nonce and reports whether it was outstanding.
	Consume(ctx context.Context, identity solana.PublicKey, nonce string) (bool, error)
}

// EventPublisher fans committed reward events out to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.RewardEvent) error
}

// --- Service Ports (Business Logic) ---

// IssuanceService issues rewards for qualifying payments.
type IssuanceService interface {
	MintRewards(ctx context.Context, req MintRequest) (*domain.MintResult, error)
}

// MintRequest holds validated input for reward issuance.
type MintRequest struct {
	Caller        solana.PublicKey
	Amount        uint64
	TransactionID string
	// TransactionKey is the record address the client expects; nil skips the check.
	TransactionKey *solana.PublicKey
}

// RedemptionService burns accrued rewards.
type RedemptionService interface {
	RedeemRewards(ctx context.Context, req RedeemRequest) (*domain.RedeemResult, error)
}

// RedeemRequest holds validated input for redemption.
type RedeemRequest struct {
	Authorization domain.OwnerAuthorization
	Amount        uint64
}

// ProgramService administers the reward policy.
type ProgramService interface {
	InitializeMint(ctx context.Context, req InitializeRequest) (*domain.ProgramState, error)
	UpdateRewardRate(ctx context.Context, caller solana.PublicKey, newRateBps uint32) (*domain.ProgramState, error)
	GetProgramState(ctx context.Context) (*domain.ProgramState, error)
}

// InitializeRequest holds input for the one-time program setup.
type InitializeRequest struct {
	Caller          solana.PublicKey
	Decimals        *uint8
	MintAuthority   *solana.PublicKey // nil = program state address
	FreezeAuthority *solana.PublicKey
}

// StatsService serves read-only views.
type StatsService interface {
	GetUserStats(ctx context.Context, user solana.PublicKey) (*domain.UserStats, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionRecord, error)
	ListUserEvents(ctx context.Context, params EventListParams) ([]domain.RewardEvent, int64, error)
}

// AuthService authenticates wallet identities.
type AuthService interface {
	Challenge(ctx context.Context, identity solana.PublicKey) (*Challenge, error)
	Login(ctx context.Context, identity solana.PublicKey, nonce string, signature string) (string, time.Time, error) // token, expiry, error
}

// Challenge is the message a wallet must sign to log in.
type Challenge struct {
	Nonce     string
	Message   string
	ExpiresAt time.Time
}
