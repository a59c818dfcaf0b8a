package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
)

// ProgramStateRepository persists the singleton policy record.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type ProgramStateRepository interface {
	// Create inserts the record; it returns false when one already exists.
	Create(ctx context.Context, tx pgx.Tx, state *domain.ProgramState) (bool, error)
	GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.ProgramState, error)
	GetByAddressForUpdate(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.ProgramState, error)
	UpdateCounters(ctx context.Context, tx pgx.Tx, state *domain.ProgramState) error
	UpdateRewardRate(ctx context.Context, tx pgx.Tx, address solana.PublicKey, rateBps uint16) error
}

// TransactionRecordRepository persists write-once transaction markers.
// Records are never updated or deleted.
type TransactionRecordRepository interface {
	// Create inserts the record; it returns false when the address is taken.
	Create(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) (bool, error)
	GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.TransactionRecord, error)
	GetByAddressTx(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.TransactionRecord, error)
}

// UserRewardsRepository persists per-user lifetime totals.
type UserRewardsRepository interface {
	// GetOrCreateForUpdate returns the locked record at key, creating an
	// all-zero record for user first if none exists.
	GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, key domain.DerivedKey, user solana.PublicKey) (*domain.UserRewards, error)
	GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.UserRewards, error)
	GetByAddressForUpdate(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.UserRewards, error)
	Update(ctx context.Context, tx pgx.Tx, rewards *domain.UserRewards) error
}

// RewardEventRepository is the append-only notification log.
type RewardEventRepository interface {
	Create(ctx context.Context, tx pgx.Tx, event *domain.RewardEvent) error
	ListByUser(ctx context.Context, params EventListParams) ([]domain.RewardEvent, int64, error)
}

// EventListParams holds filter + pagination for listing a user's events.
type EventListParams struct {
	User     solana.PublicKey
	Kind     *domain.EventKind
	Page     int
	PageSize int
}

const (
	DefaultEventPageSize = 20
	MaxEventPageSize     = 100
)

// Normalized fills in the first page and the default page size, and caps
// PageSize at MaxEventPageSize.
func (p EventListParams) Normalized() EventListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultEventPageSize
	}
	if p.PageSize > MaxEventPageSize {
		p.PageSize = MaxEventPageSize
	}
	return p
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
