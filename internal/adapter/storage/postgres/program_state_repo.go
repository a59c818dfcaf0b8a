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

const programStateColumns = `address, bump, mint, mint_authority, total_minted, total_transactions,
		reward_rate_bps, admin, created_at, updated_at`

// ProgramStateRepo implements ports.ProgramStateRepository.
type ProgramStateRepo struct {
	pool Pool
}

// NewProgramStateRepo creates a new ProgramStateRepo.
func NewProgramStateRepo(pool Pool) *ProgramStateRepo {
	return &ProgramStateRepo{pool: pool}
}

// Create inserts the singleton. A second call finds the row already present
// and reports false without modifying it.
func (r *ProgramStateRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.ProgramState) (bool, error) {
	query := `INSERT INTO program_state (` + programStateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (address) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		s.Address.String(), int16(s.Bump), s.Mint.String(), s.MintAuthority.String(),
		toNumeric(0), toNumeric(0), int16(s.RewardRateBps), s.Admin.String(),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert program state: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByAddress fetches the program state (without locking).
func (r *ProgramStateRepo) GetByAddress(ctx context.Context, address solana.PublicKey) (*domain.ProgramState, error) {
	query := `SELECT ` + programStateColumns + ` FROM program_state WHERE address = $1`

	return r.scanProgramState(r.pool.QueryRow(ctx, query, address.String()))
}

// GetByAddressForUpdate fetches the program state with pessimistic locking.
// This MUST be called within a transaction.
func (r *ProgramStateRepo) GetByAddressForUpdate(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.ProgramState, error) {
	query := `SELECT ` + programStateColumns + ` FROM program_state WHERE address = $1 FOR UPDATE`

	return r.scanProgramState(tx.QueryRow(ctx, query, address.String()))
}

// UpdateCounters persists total_minted and total_transactions. Admin and
// rate are never written here.
func (r *ProgramStateRepo) UpdateCounters(ctx context.Context, tx pgx.Tx, s *domain.ProgramState) error {
	query := `UPDATE program_state SET total_minted = $1, total_transactions = $2, updated_at = NOW()
		WHERE address = $3`

	tag, err := tx.Exec(ctx, query, toNumeric(s.TotalMinted), toNumeric(s.TotalTransactions), s.Address.String())
	if err != nil {
		return fmt.Errorf("update program counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program state not found: %s", s.Address)
	}
	return nil
}

// UpdateRewardRate changes reward_rate_bps only.
func (r *ProgramStateRepo) UpdateRewardRate(ctx context.Context, tx pgx.Tx, address solana.PublicKey, rateBps uint16) error {
	query := `UPDATE program_state SET reward_rate_bps = $1, updated_at = NOW() WHERE address = $2`

	tag, err := tx.Exec(ctx, query, int16(rateBps), address.String())
	if err != nil {
		return fmt.Errorf("update reward rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program state not found: %s", address)
	}
	return nil
}

func (r *ProgramStateRepo) scanProgramState(row pgx.Row) (*domain.ProgramState, error) {
	var (
		address, mint, mintAuthority, admin string
		bump, rate                          int16
		minted, count                       pgtype.Numeric
	)
	s := &domain.ProgramState{}
	err := row.Scan(
		&address, &bump, &mint, &mintAuthority, &minted, &count,
		&rate, &admin, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan program state: %w", err)
	}

	if s.Address, err = parseKey("address", address); err != nil {
		return nil, err
	}
	if s.Mint, err = parseKey("mint", mint); err != nil {
		return nil, err
	}
	if s.MintAuthority, err = parseKey("mint_authority", mintAuthority); err != nil {
		return nil, err
	}
	if s.Admin, err = parseKey("admin", admin); err != nil {
		return nil, err
	}
	if s.TotalMinted, err = fromNumeric("total_minted", minted); err != nil {
		return nil, err
	}
	if s.TotalTransactions, err = fromNumeric("total_transactions", count); err != nil {
		return nil, err
	}
	s.Bump = uint8(bump)
	s.RewardRateBps = uint16(rate)
	return s, nil
}
