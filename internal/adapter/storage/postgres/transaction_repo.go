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

const transactionRecordColumns = `address, bump, transaction_id, user_key, amount, reward_amount,
		processed_at, is_processed`

// TransactionRecordRepo implements ports.TransactionRecordRepository.
type TransactionRecordRepo struct {
	pool Pool
}

// NewTransactionRecordRepo creates a new TransactionRecordRepo.
func NewTransactionRecordRepo(pool Pool) *TransactionRecordRepo {
	return &TransactionRecordRepo{pool: pool}
}

// Create inserts a processed record within a database transaction. The
// primary key is the derived address, so a concurrent writer for the same
// transaction ID sees zero rows affected.
func (r *TransactionRecordRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TransactionRecord) (bool, error) {
	query := `INSERT INTO transaction_records (` + transactionRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (address) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		t.Address.String(), int16(t.Bump), t.TransactionID, t.User.String(),
		toNumeric(t.Amount), toNumeric(t.RewardAmount), t.Timestamp, t.IsProcessed,
	)
	if err != nil {
		return false, fmt.Errorf("insert transaction record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByAddress fetches a record by its derived address.
func (r *TransactionRecordRepo) GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionRecordColumns + ` FROM transaction_records WHERE address = $1`

	return r.scanTransactionRecord(r.pool.QueryRow(ctx, query, address.String()))
}

// GetByAddressTx fetches a record inside the caller's transaction.
func (r *TransactionRecordRepo) GetByAddressTx(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionRecordColumns + ` FROM transaction_records WHERE address = $1`

	return r.scanTransactionRecord(tx.QueryRow(ctx, query, address.String()))
}

func (r *TransactionRecordRepo) scanTransactionRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	var (
		address, user  string
		bump           int16
		amount, reward pgtype.Numeric
	)
	t := &domain.TransactionRecord{}
	err := row.Scan(
		&address, &bump, &t.TransactionID, &user, &amount, &reward,
		&t.Timestamp, &t.IsProcessed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction record: %w", err)
	}

	if t.Address, err = parseKey("address", address); err != nil {
		return nil, err
	}
	if t.User, err = parseKey("user_key", user); err != nil {
		return nil, err
	}
	if t.Amount, err = fromNumeric("amount", amount); err != nil {
		return nil, err
	}
	if t.RewardAmount, err = fromNumeric("reward_amount", reward); err != nil {
		return nil, err
	}
	t.Bump = uint8(bump)
	return t, nil
}
