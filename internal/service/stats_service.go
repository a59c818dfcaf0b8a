package service

import (
	"context"
	"fmt"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/locator"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"

	"github.com/gagliardetto/solana-go"
)

// statsService implements ports.StatsService.
type statsService struct {
	programRepo ports.ProgramStateRepository
	recordRepo  ports.TransactionRecordRepository
	userRepo    ports.UserRewardsRepository
	eventRepo   ports.RewardEventRepository
	ledger      ports.TokenLedger
	locator     *locator.Locator
}

// NewStatsService creates a new stats service.
func NewStatsService(
	programRepo ports.ProgramStateRepository,
	recordRepo ports.TransactionRecordRepository,
	userRepo ports.UserRewardsRepository,
	eventRepo ports.RewardEventRepository,
	ledger ports.TokenLedger,
	loc *locator.Locator,
) ports.StatsService {
	return &statsService{
		programRepo: programRepo,
		recordRepo:  recordRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		ledger:      ledger,
		locator:     loc,
	}
}

// GetUserStats combines lifetime totals with the live token balance. A user
// who never earned reports zero totals.
func (s *statsService) GetUserStats(ctx context.Context, user solana.PublicKey) (*domain.UserStats, error) {
	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}
	userKey, err := s.locator.UserRewards(user)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive user rewards key: %w", err))
	}

	state, err := s.programRepo.GetByAddress(ctx, stateKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if state == nil {
		return nil, apperror.ErrProgramNotInitialized()
	}

	rewards, err := s.userRepo.GetByAddress(ctx, userKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	balance, err := s.ledger.BalanceOf(ctx, state.Mint, user)
	if err != nil {
		return nil, ledgerError(err)
	}

	stats := &domain.UserStats{User: user.String(), CurrentBalance: balance}
	if rewards != nil {
		stats.TotalEarned = rewards.TotalEarned
		stats.TotalRedeemed = rewards.TotalRedeemed
		stats.TransactionCount = rewards.TransactionCount
	}
	return stats, nil
}

// GetTransaction looks up the record a transaction identifier produced.
func (s *statsService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionRecord, error) {
	if err := domain.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}
	key, err := s.locator.Transaction(transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive transaction key: %w", err))
	}

	record, err := s.recordRepo.GetByAddress(ctx, key.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if record == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return record, nil
}

// ListUserEvents returns a page of the user's reward events, newest first.
func (s *statsService) ListUserEvents(ctx context.Context, params ports.EventListParams) ([]domain.RewardEvent, int64, error) {
	events, total, err := s.eventRepo.ListByUser(ctx, params.Normalized())
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return events, total, nil
}
