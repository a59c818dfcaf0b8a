package service

import (
	"context"
	"fmt"
	"time"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/locator"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/internal/observability"
	"smartpay-rewards/pkg/apperror"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// RedemptionServiceImpl implements ports.RedemptionService.
type RedemptionServiceImpl struct {
	programRepo ports.ProgramStateRepository
	userRepo    ports.UserRewardsRepository
	eventRepo   ports.RewardEventRepository
	ledger      ports.TokenLedger
	transactor  ports.DBTransactor
	publisher   ports.EventPublisher
	locator     *locator.Locator
	metrics     *observability.Metrics
	log         zerolog.Logger
}

// NewRedemptionService creates a new RedemptionServiceImpl.
func NewRedemptionService(
	programRepo ports.ProgramStateRepository,
	userRepo ports.UserRewardsRepository,
	eventRepo ports.RewardEventRepository,
	ledger ports.TokenLedger,
	transactor ports.DBTransactor,
	publisher ports.EventPublisher,
	loc *locator.Locator,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	return &RedemptionServiceImpl{
		programRepo: programRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		ledger:      ledger,
		transactor:  transactor,
		publisher:   publisher,
		locator:     loc,
		metrics:     metrics,
		log:         log,
	}
}

// RedeemRewards burns amount from the authorized owner's balance.
func (s *RedemptionServiceImpl) RedeemRewards(ctx context.Context, req ports.RedeemRequest) (result *domain.RedeemResult, err error) {
	owner := req.Authorization.Owner()
	ctx, span := startSpan(ctx, opRedeemRewards, attribute.String("rewards.user", owner.String()))
	defer func() { finish(span, s.metrics, opRedeemRewards, err) }()

	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if !req.Authorization.Permits(owner) {
		return nil, apperror.ErrUnauthorized()
	}

	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}
	userKey, err := s.locator.UserRewards(owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive user rewards key: %w", err))
	}

	state, err := s.programRepo.GetByAddress(ctx, stateKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load program state: %w", err))
	}
	if state == nil {
		return nil, apperror.ErrProgramNotInitialized()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock order matches issuance: user rewards, then token rows.
	user, err := s.userRepo.GetByAddressForUpdate(ctx, dbTx, userKey.Address)
	if err != nil {
		return nil, lockError("lock user rewards", err)
	}
	balance, err := s.ledger.BalanceOfForUpdate(ctx, dbTx, state.Mint, owner)
	if err != nil {
		return nil, ledgerError(err)
	}
	if balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user rewards")
	}
	if err := user.RecordRedeemed(req.Amount); err != nil {
		return nil, err
	}

	account, err := s.ledger.Burn(ctx, dbTx, state.Mint, req.Authorization, req.Amount)
	if err != nil {
		return nil, ledgerError(err)
	}

	if err := s.userRepo.Update(ctx, dbTx, user); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update user rewards: %w", err))
	}

	now := time.Now().UTC()
	event := domain.NewRewardRedeemed(owner, req.Amount, now)
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("record reward event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish reward event")
	}
	s.metrics.Redeemed(req.Amount)

	s.log.Info().
		Str("user", owner.String()).
		Uint64("amount", req.Amount).
		Uint64("remaining", account.Amount).
		Msg("rewards redeemed")

	return &domain.RedeemResult{
		User:             owner.String(),
		Amount:           req.Amount,
		RemainingBalance: account.Amount,
		Timestamp:        now,
	}, nil
}
