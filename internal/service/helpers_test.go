package service

import (
	"context"
	"errors"
	"testing"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/locator"
	"smartpay-rewards/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	committed bool
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error {
	m.committed = true
	return nil
}

func testLocator(t *testing.T) *locator.Locator {
	t.Helper()
	loc, err := locator.NewFromBase58("SmartPayRewards1111111111111111111111111111")
	require.NoError(t, err)
	return loc
}

func initializedState(t *testing.T, loc *locator.Locator, admin solana.PublicKey, rateBps uint16) *domain.ProgramState {
	t.Helper()
	stateKey, err := loc.ProgramState()
	require.NoError(t, err)
	mintKey, err := loc.Mint()
	require.NoError(t, err)
	return &domain.ProgramState{
		Address:       stateKey.Address,
		Bump:          stateKey.Bump,
		Mint:          mintKey.Address,
		MintAuthority: stateKey.Address,
		RewardRateBps: rateBps,
		Admin:         admin,
	}
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func isAppError(err error, code string) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
