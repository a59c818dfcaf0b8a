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

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// ProgramDefaults configures a freshly initialized program.
type ProgramDefaults struct {
	RewardRateBps uint16
	Decimals      uint8
}

// ProgramServiceImpl implements ports.ProgramService.
type ProgramServiceImpl struct {
	programRepo    ports.ProgramStateRepository
	eventRepo      ports.RewardEventRepository
	ledger         ports.TokenLedger
	transactor     ports.DBTransactor
	publisher      ports.EventPublisher
	locator        *locator.Locator
	metrics        *observability.Metrics
	defaults       ProgramDefaults
	bootstrapAdmin *solana.PublicKey
	log            zerolog.Logger
}

// NewProgramService creates a new ProgramServiceImpl. A non-nil
// bootstrapAdmin restricts InitializeMint to that identity.
func NewProgramService(
	programRepo ports.ProgramStateRepository,
	eventRepo ports.RewardEventRepository,
	ledger ports.TokenLedger,
	transactor ports.DBTransactor,
	publisher ports.EventPublisher,
	loc *locator.Locator,
	metrics *observability.Metrics,
	defaults ProgramDefaults,
	bootstrapAdmin *solana.PublicKey,
	log zerolog.Logger,
) *ProgramServiceImpl {
	return &ProgramServiceImpl{
		programRepo:    programRepo,
		eventRepo:      eventRepo,
		ledger:         ledger,
		transactor:     transactor,
		publisher:      publisher,
		locator:        loc,
		metrics:        metrics,
		defaults:       defaults,
		bootstrapAdmin: bootstrapAdmin,
		log:            log,
	}
}

// InitializeMint performs the one-time setup: the reward mint, the program
// state, and the caller as admin.
func (s *ProgramServiceImpl) InitializeMint(ctx context.Context, req ports.InitializeRequest) (result *domain.ProgramState, err error) {
	ctx, span := startSpan(ctx, opInitializeMint, attribute.String("rewards.admin", req.Caller.String()))
	defer func() { finish(span, s.metrics, opInitializeMint, err) }()

	decimals := s.defaults.Decimals
	if req.Decimals != nil {
		if *req.Decimals > domain.MaxTokenDecimals {
			return nil, apperror.ErrInvalidDecimals()
		}
		decimals = *req.Decimals
	}
	if s.bootstrapAdmin != nil && !s.bootstrapAdmin.Equals(req.Caller) {
		return nil, apperror.ErrUnauthorized()
	}

	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}
	mintKey, err := s.locator.Mint()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive mint key: %w", err))
	}
	if req.MintAuthority != nil && !req.MintAuthority.Equals(stateKey.Address) {
		return nil, apperror.ErrInvalidMintAuthority()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := s.programRepo.GetByAddressForUpdate(ctx, dbTx, stateKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("read program state: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrProgramAlreadyInitialized()
	}

	now := time.Now().UTC()
	mint := &domain.TokenMint{
		Address:         mintKey.Address,
		Decimals:        decimals,
		MintAuthority:   stateKey.Address,
		FreezeAuthority: req.FreezeAuthority,
		CreatedAt:       now,
	}
	created, err := s.ledger.CreateMint(ctx, dbTx, mint)
	if err != nil {
		return nil, ledgerError(err)
	}
	if !created {
		return nil, apperror.ErrProgramAlreadyInitialized()
	}

	state := &domain.ProgramState{
		Address:       stateKey.Address,
		Bump:          stateKey.Bump,
		Mint:          mintKey.Address,
		MintAuthority: stateKey.Address,
		RewardRateBps: s.defaults.RewardRateBps,
		Admin:         req.Caller,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err = s.programRepo.Create(ctx, dbTx, state)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create program state: %w", err))
	}
	if !created {
		return nil, apperror.ErrProgramAlreadyInitialized()
	}

	event := domain.NewPolicyEvent(domain.EventInitialized, req.Caller, state.RewardRateBps, now)
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("record program event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish program event")
	}
	s.metrics.RewardRate(state.RewardRateBps)

	s.log.Info().
		Str("admin", req.Caller.String()).
		Str("mint", mintKey.Address.String()).
		Uint8("decimals", decimals).
		Uint16("rate_bps", state.RewardRateBps).
		Msg("reward program initialized")

	return state, nil
}

// UpdateRewardRate changes the rate applied to future issuances.
func (s *ProgramServiceImpl) UpdateRewardRate(ctx context.Context, caller solana.PublicKey, newRateBps uint32) (result *domain.ProgramState, err error) {
	ctx, span := startSpan(ctx, opUpdateRewardRate,
		attribute.String("rewards.caller", caller.String()),
		attribute.Int64("rewards.rate_bps", int64(newRateBps)),
	)
	defer func() { finish(span, s.metrics, opUpdateRewardRate, err) }()

	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.programRepo.GetByAddressForUpdate(ctx, dbTx, stateKey.Address)
	if err != nil {
		return nil, lockError("lock program state", err)
	}
	if state == nil {
		return nil, apperror.ErrProgramNotInitialized()
	}
	if !state.IsAdmin(caller) {
		return nil, apperror.ErrUnauthorized()
	}
	if newRateBps > uint32(domain.MaxRewardRateBps) {
		return nil, apperror.ErrRewardRateTooHigh()
	}
	rate := uint16(newRateBps)

	if err := s.programRepo.UpdateRewardRate(ctx, dbTx, state.Address, rate); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update reward rate: %w", err))
	}
	previous := state.RewardRateBps
	now := time.Now().UTC()
	state.RewardRateBps = rate
	state.UpdatedAt = now

	event := domain.NewPolicyEvent(domain.EventRateUpdated, caller, rate, now)
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("record program event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish program event")
	}
	s.metrics.RewardRate(rate)

	s.log.Info().
		Str("admin", caller.String()).
		Uint16("previous_bps", previous).
		Uint16("rate_bps", rate).
		Msg("reward rate updated")

	return state, nil
}

// GetProgramState returns the current policy record.
func (s *ProgramServiceImpl) GetProgramState(ctx context.Context) (*domain.ProgramState, error) {
	stateKey, err := s.locator.ProgramState()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive program state key: %w", err))
	}
	state, err := s.programRepo.GetByAddress(ctx, stateKey.Address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load program state: %w", err))
	}
	if state == nil {
		return nil, apperror.ErrProgramNotInitialized()
	}
	return state, nil
}
