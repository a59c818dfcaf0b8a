package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartpay-rewards/internal/core/ports/mocks"
	"smartpay-rewards/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (*AuthServiceImpl, *mocks.MockChallengeStore, *mocks.MockTokenService) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockChallengeStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	return NewAuthService(store, tokens, 5*time.Minute), store, tokens
}

func signLogin(t *testing.T, wallet *solana.Wallet, nonce string) string {
	t.Helper()
	sig, err := wallet.PrivateKey.Sign([]byte(LoginMessage(nonce)))
	require.NoError(t, err)
	return sig.String()
}

func TestAuthService_Challenge(t *testing.T) {
	svc, store, _ := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet().PublicKey()

	var issued string
	store.EXPECT().Issue(ctx, wallet, gomock.Any(), 5*time.Minute).
		DoAndReturn(func(_ context.Context, _ solana.PublicKey, nonce string, _ time.Duration) error {
			issued = nonce
			return nil
		})

	ch, err := svc.Challenge(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, issued, ch.Nonce)
	assert.Equal(t, "rewards-login:"+issued, ch.Message)
	assert.True(t, ch.ExpiresAt.After(time.Now()))

	raw, err := base58.Decode(ch.Nonce)
	require.NoError(t, err)
	assert.Len(t, raw, nonceBytes)
}

func TestAuthService_Challenge_ZeroWallet(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Challenge(context.Background(), solana.PublicKey{})
	assertAppError(t, err, "REQ_001")
}

func TestAuthService_Challenge_StoreDown(t *testing.T) {
	svc, store, _ := setupAuthService(t)
	store.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Challenge(context.Background(), solana.NewWallet().PublicKey())
	assertAppError(t, err, "SYS_001")
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, store, tokens := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet()
	expiry := time.Now().Add(time.Hour)

	store.EXPECT().Consume(ctx, wallet.PublicKey(), "nonce-1").Return(true, nil)
	tokens.EXPECT().Generate(wallet.PublicKey()).Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(ctx, wallet.PublicKey(), "nonce-1", signLogin(t, wallet, "nonce-1"))
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_WrongSigner(t *testing.T) {
	svc, store, _ := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet()
	impostor := solana.NewWallet()

	store.EXPECT().Consume(ctx, wallet.PublicKey(), "nonce-1").Return(true, nil)

	_, _, err := svc.Login(ctx, wallet.PublicKey(), "nonce-1", signLogin(t, impostor, "nonce-1"))
	assertAppError(t, err, "AUTH_003")
}

func TestAuthService_Login_SignedOtherNonce(t *testing.T) {
	svc, store, _ := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet()

	store.EXPECT().Consume(ctx, wallet.PublicKey(), "nonce-1").Return(true, nil)

	_, _, err := svc.Login(ctx, wallet.PublicKey(), "nonce-1", signLogin(t, wallet, "nonce-2"))
	assertAppError(t, err, "AUTH_003")
}

func TestAuthService_Login_NonceNotOutstanding(t *testing.T) {
	svc, store, _ := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet()

	store.EXPECT().Consume(ctx, wallet.PublicKey(), "used").Return(false, nil)

	_, _, err := svc.Login(ctx, wallet.PublicKey(), "used", signLogin(t, wallet, "used"))
	assertAppError(t, err, "AUTH_004")
}

func TestAuthService_Login_MalformedSignature(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), solana.NewWallet().PublicKey(), "nonce", "not-a-signature")
	assertAppError(t, err, "AUTH_003")
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	svc, store, tokens := setupAuthService(t)
	ctx := context.Background()
	wallet := solana.NewWallet()

	store.EXPECT().Consume(ctx, wallet.PublicKey(), "n").Return(true, nil)
	tokens.EXPECT().Generate(wallet.PublicKey()).Return("", time.Time{}, errors.New("boom"))

	_, _, err := svc.Login(ctx, wallet.PublicKey(), "n", signLogin(t, wallet, "n"))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
