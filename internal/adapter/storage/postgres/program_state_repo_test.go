package postgres

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgramState() *domain.ProgramState {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.ProgramState{
		Address:           solana.NewWallet().PublicKey(),
		Bump:              253,
		Mint:              solana.NewWallet().PublicKey(),
		MintAuthority:     solana.NewWallet().PublicKey(),
		TotalMinted:       1_500,
		TotalTransactions: 12,
		RewardRateBps:     200,
		Admin:             solana.NewWallet().PublicKey(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func programStateRow(s *domain.ProgramState) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"address", "bump", "mint", "mint_authority", "total_minted", "total_transactions",
		"reward_rate_bps", "admin", "created_at", "updated_at",
	}).AddRow(
		s.Address.String(), int16(s.Bump), s.Mint.String(), s.MintAuthority.String(),
		num(s.TotalMinted), num(s.TotalTransactions), int16(s.RewardRateBps),
		s.Admin.String(), s.CreatedAt, s.UpdatedAt,
	)
}

func TestProgramStateRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO program_state .+ ON CONFLICT \\(address\\) DO NOTHING").
		WithArgs(s.Address.String(), int16(s.Bump), s.Mint.String(), s.MintAuthority.String(),
			numericArg(0), numericArg(0), int16(200), s.Admin.String(), s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), tx, s)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_Create_AlreadyExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO program_state").
		WithArgs(s.Address.String(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			numericArg(0), numericArg(0), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), tx, s)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_GetByAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectQuery("SELECT .+ FROM program_state WHERE address").
		WithArgs(s.Address.String()).
		WillReturnRows(programStateRow(s))

	result, err := repo.GetByAddress(context.Background(), s.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Admin.Equals(s.Admin))
	assert.Equal(t, uint64(1_500), result.TotalMinted)
	assert.Equal(t, uint64(12), result.TotalTransactions)
	assert.Equal(t, uint16(200), result.RewardRateBps)
	assert.Equal(t, uint8(253), result.Bump)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_GetByAddress_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	addr := solana.NewWallet().PublicKey()

	mock.ExpectQuery("SELECT .+ FROM program_state WHERE address").
		WithArgs(addr.String()).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByAddress(context.Background(), addr)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestProgramStateRepo_GetByAddress_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	addr := solana.NewWallet().PublicKey()

	mock.ExpectQuery("SELECT .+ FROM program_state").
		WithArgs(addr.String()).
		WillReturnError(errors.New("connection reset"))

	result, err := repo.GetByAddress(context.Background(), addr)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan program state")
}

func TestProgramStateRepo_GetByAddressForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM program_state WHERE address .+ FOR UPDATE").
		WithArgs(s.Address.String()).
		WillReturnRows(programStateRow(s))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByAddressForUpdate(context.Background(), tx, s.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Mint.Equals(s.Mint))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_UpdateCounters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE program_state SET total_minted").
		WithArgs(numericArg(1_500), numericArg(12), s.Address.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.UpdateCounters(context.Background(), tx, s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_UpdateCounters_FullUnsignedRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()
	s.TotalMinted = math.MaxUint64
	s.TotalTransactions = 1 << 63

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE program_state SET total_minted").
		WithArgs(numericArg(math.MaxUint64), numericArg(1<<63), s.Address.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT .+ FROM program_state WHERE address").
		WithArgs(s.Address.String()).
		WillReturnRows(programStateRow(s))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateCounters(context.Background(), tx, s))

	result, err := repo.GetByAddress(context.Background(), s.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint64(math.MaxUint64), result.TotalMinted)
	assert.Equal(t, uint64(1<<63), result.TotalTransactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_UpdateCounters_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	s := newTestProgramState()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE program_state SET total_minted").
		WithArgs(numericArg(1_500), numericArg(12), s.Address.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateCounters(context.Background(), tx, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program state not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_UpdateRewardRate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	addr := solana.NewWallet().PublicKey()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE program_state SET reward_rate_bps").
		WithArgs(int16(1000), addr.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.UpdateRewardRate(context.Background(), tx, addr, 1000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramStateRepo_UpdateRewardRate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProgramStateRepo(mock)
	addr := solana.NewWallet().PublicKey()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE program_state SET reward_rate_bps").
		WithArgs(int16(5), addr.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateRewardRate(context.Background(), tx, addr, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program state not found")
}
