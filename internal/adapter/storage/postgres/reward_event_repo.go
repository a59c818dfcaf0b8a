package postgres

import (
	"context"
	"fmt"
	"strings"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// RewardEventRepo implements ports.RewardEventRepository.
type RewardEventRepo struct {
	pool Pool
}

// NewRewardEventRepo creates a PostgreSQL-backed RewardEventRepository.
func NewRewardEventRepo(pool Pool) *RewardEventRepo {
	return &RewardEventRepo{pool: pool}
}

// Create appends an event inside the operation's transaction.
func (r *RewardEventRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.RewardEvent) error {
	var txID *string
	if e.TransactionID != "" {
		txID = &e.TransactionID
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO reward_events (id, kind, user_key, amount, reward_amount, transaction_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, string(e.Kind), e.User.String(), toNumeric(e.Amount), toNumeric(e.RewardAmount), txID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reward event: %w", err)
	}
	return nil
}

// ListByUser returns one page of a user's events, newest first, and the total count.
func (r *RewardEventRepo) ListByUser(ctx context.Context, params ports.EventListParams) ([]domain.RewardEvent, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("user_key = $%d", argIdx))
	args = append(args, params.User.String())
	argIdx++

	if params.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, string(*params.Kind))
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reward_events %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reward events: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, kind, user_key, amount, reward_amount, COALESCE(transaction_id, ''), created_at
		FROM reward_events %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reward events: %w", err)
	}
	defer rows.Close()

	var events []domain.RewardEvent
	for rows.Next() {
		var (
			e              domain.RewardEvent
			kind, user     string
			amount, reward pgtype.Numeric
		)
		if err := rows.Scan(&e.ID, &kind, &user, &amount, &reward, &e.TransactionID, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan reward event row: %w", err)
		}
		e.Kind = domain.EventKind(kind)
		if e.User, err = parseKey("user_key", user); err != nil {
			return nil, 0, err
		}
		if e.Amount, err = fromNumeric("amount", amount); err != nil {
			return nil, 0, err
		}
		if e.RewardAmount, err = fromNumeric("reward_amount", reward); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reward event rows: %w", err)
	}
	return events, total, nil
}
