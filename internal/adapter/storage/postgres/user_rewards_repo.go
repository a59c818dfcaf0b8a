package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userRewardsColumns = `address, bump, user_key, total_earned, total_redeemed, transaction_count,
		created_at, updated_at`

// UserRewardsRepo implements ports.UserRewardsRepository.
type UserRewardsRepo struct {
	pool Pool
}

// NewUserRewardsRepo creates a new UserRewardsRepo.
func NewUserRewardsRepo(pool Pool) *UserRewardsRepo {
	return &UserRewardsRepo{pool: pool}
}

// GetOrCreateForUpdate lazily creates the user's record and returns it locked.
// This MUST be called within a transaction.
func (r *UserRewardsRepo) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, key domain.DerivedKey, user solana.PublicKey) (*domain.UserRewards, error) {
	insert := `INSERT INTO user_rewards (address, bump, user_key, total_earned, total_redeemed, transaction_count, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (address) DO NOTHING`

	if _, err := tx.Exec(ctx, insert, key.Address.String(), int16(key.Bump), user.String()); err != nil {
		return nil, fmt.Errorf("init user rewards: %w", err)
	}

	u, err := r.GetByAddressForUpdate(ctx, tx, key.Address)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user rewards vanished after insert: %s", key.Address)
	}
	return u, nil
}

// GetByAddress fetches a user's record (without locking).
func (r *UserRewardsRepo) GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.UserRewards, error) {
	query := `SELECT ` + userRewardsColumns + ` FROM user_rewards WHERE address = $1`

	return r.scanUserRewards(r.pool.QueryRow(ctx, query, address.String()))
}

// GetByAddressForUpdate fetches a user's record with pessimistic locking.
// This MUST be called within a transaction.
func (r *UserRewardsRepo) GetByAddressForUpdate(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.UserRewards, error) {
	query := `SELECT ` + userRewardsColumns + ` FROM user_rewards WHERE address = $1 FOR UPDATE`

	return r.scanUserRewards(tx.QueryRow(ctx, query, address.String()))
}

// Update persists the three lifetime counters.
func (r *UserRewardsRepo) Update(ctx context.Context, tx pgx.Tx, u *domain.UserRewards) error {
	query := `UPDATE user_rewards SET total_earned = $1, total_redeemed = $2, transaction_count = $3, updated_at = NOW()
		WHERE address = $4`

	tag, err := tx.Exec(ctx, query,
		toNumeric(u.TotalEarned), toNumeric(u.TotalRedeemed), toNumeric(u.TransactionCount), u.Address.String(),
	)
	if err != nil {
		return fmt.Errorf("update user rewards: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user rewards not found: %s", u.Address)
	}
	return nil
}

func (r *UserRewardsRepo) scanUserRewards(row pgx.Row) (*domain.UserRewards, error) {
	var (
		address, user            string
		bump                     int16
		earned, redeemed, txnCnt pgtype.Numeric
	)
	u := &domain.UserRewards{}
	err := row.Scan(&address, &bump, &user, &earned, &redeemed, &txnCnt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user rewards: %w", err)
	}

	if u.Address, err = parseKey("address", address); err != nil {
		return nil, err
	}
	if u.User, err = parseKey("user_key", user); err != nil {
		return nil, err
	}
	if u.TotalEarned, err = fromNumeric("total_earned", earned); err != nil {
		return nil, err
	}
	if u.TotalRedeemed, err = fromNumeric("total_redeemed", redeemed); err != nil {
		return nil, err
	}
	if u.TransactionCount, err = fromNumeric("transaction_count", txnCnt); err != nil {
		return nil, err
	}
	u.Bump = uint8(bump)
	return u, nil
}
