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

// IssuanceServiceImpl implements ports.IssuanceService.
type IssuanceServiceImpl struct {
	programRepo  ports.ProgramStateRepository
	recordRepo   ports.TransactionRecordRepository
	userRepo     ports.UserRewardsRepository
	eventRepo    ports.RewardEventRepository
	ledger       ports.TokenLedger
	transactor   ports.DBTransactor
	cache        ports.ProcessedCache
	publisher    ports.EventPublisher
	locator      *locator.Locator
	metrics      *observability.Metrics
	processedTTL time.Duration
	log          zerolog.Logger
}

// NewIssuanceService creates a new IssuanceServiceImpl.
func NewIssuanceService(
	programRepo ports.ProgramStateRepository,
	recordRepo ports.TransactionRecordRepository,
	userRepo ports.UserRewardsRepository,
	eventRepo ports.RewardEventRepository,
	ledger ports.TokenLedger,
	transactor ports.DBTransactor,
	cache ports.ProcessedCache,
	publisher ports.EventPublisher,
	loc *locator.Locator,
	metrics *observability.Metrics,
	processedTTL time.Duration,
	log zerolog.Logger,
) *IssuanceServiceImpl {
	return &IssuanceServiceImpl{
		programRepo:  programRepo,
		recordRepo:   recordRepo,
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		ledger:       ledger,
		transactor:   transactor,
		cache:        cache,
		publisher:    publisher,
		locator:      loc,
		metrics:      metrics,
		processedTTL: processedTTL,
		log:          log,
	}
}

// MintRewards issues the reward for one qualifying payment. A transaction
// identifier earns a reward at most once; replays fail without side effects.
func (s *IssuanceServiceImpl) MintRewards(ctx context.Context, req ports.MintRequest) (result *domain.MintResult, err error) {
	ctx, span := startSpan(ctx, opMintRewards,
		attribute.String("rewards.user", req.Caller.String()),
		attribute.String("rewards.transaction_id", req.TransactionID),
	)
	defer func() { finish(span, s.metrics, opMintRewards, err) }()

	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateTransactionID(req.TransactionID); err != nil {
		return nil, err
	}

	recordKey, err := s.locator.Transaction(req.TransactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive transaction key: %w", err))
	}
	if req.TransactionKey != nil && !req.TransactionKey.Equals(recordKey.Address) {
		return nil, apperror.ErrInvalidDerivedKey()
	}
	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}
	userKey, err := s.locator.UserRewards(req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive user rewards key: %w", err))
	}

	// Layer 1: Redis processed marker
	seen, err := s.cache.IsProcessed(ctx, recordKey.Address)
	if err != nil {
		s.log.Warn().Err(err).Str("record", recordKey.Address.String()).Msg("redis processed check failed, falling through to DB")
	}
	if seen {
		s.metrics.Duplicate()
		return nil, apperror.ErrTransactionAlreadyProcessed()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock program state; this serializes issuance against rate updates.
	state, err := s.programRepo.GetByAddressForUpdate(ctx, dbTx, stateKey.Address)
	if err != nil {
		return nil, lockError("lock program state", err)
	}
	if state == nil {
		return nil, apperror.ErrProgramNotInitialized()
	}

	// Layer 2: DB transaction record
	existing, err := s.recordRepo.GetByAddressTx(ctx, dbTx, recordKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("read transaction record: %w", err))
	}
	if existing != nil && existing.IsProcessed {
		s.metrics.Duplicate()
		return nil, apperror.ErrTransactionAlreadyProcessed()
	}

	reward, err := domain.ComputeReward(req.Amount, state.RewardRateBps)
	if err != nil {
		return nil, err
	}

	// Counters are checked before the ledger is touched.
	if err := state.RecordIssuance(reward); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetOrCreateForUpdate(ctx, dbTx, userKey, req.Caller)
	if err != nil {
		return nil, lockError("lock user rewards", err)
	}
	if err := user.RecordEarned(reward); err != nil {
		return nil, err
	}

	if _, err := s.ledger.MintTo(ctx, dbTx, state.Mint, state.MintCapability(), req.Caller, reward); err != nil {
		return nil, ledgerError(err)
	}

	if err := s.programRepo.UpdateCounters(ctx, dbTx, state); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update program counters: %w", err))
	}

	now := time.Now().UTC()
	record := &domain.TransactionRecord{
		Address:       recordKey.Address,
		Bump:          recordKey.Bump,
		TransactionID: req.TransactionID,
		User:          req.Caller,
		Amount:        req.Amount,
		RewardAmount:  reward,
		Timestamp:     now,
		IsProcessed:   true,
	}
	created, err := s.recordRepo.Create(ctx, dbTx, record)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create transaction record: %w", err))
	}
	if !created {
		s.metrics.Duplicate()
		return nil, apperror.ErrTransactionAlreadyProcessed()
	}

	if err := s.userRepo.Update(ctx, dbTx, user); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update user rewards: %w", err))
	}

	event := domain.NewRewardMinted(req.Caller, req.Amount, reward, req.TransactionID, now)
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("record reward event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process (best-effort)
	if err := s.cache.MarkProcessed(ctx, recordKey.Address, s.processedTTL); err != nil {
		s.log.Warn().Err(err).Str("record", recordKey.Address.String()).Msg("failed to mark transaction processed in redis")
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish reward event")
	}
	s.metrics.Minted(req.Amount, reward)

	s.log.Info().
		Str("user", req.Caller.String()).
		Str("transaction_id", req.TransactionID).
		Uint64("amount", req.Amount).
		Uint64("reward", reward).
		Uint16("rate_bps", state.RewardRateBps).
		Msg("rewards minted")

	return &domain.MintResult{
		TransactionID:  req.TransactionID,
		TransactionKey: recordKey,
		User:           req.Caller.String(),
		Amount:         req.Amount,
		RewardAmount:   reward,
		Timestamp:      now,
	}, nil
}
