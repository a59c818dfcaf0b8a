package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const (
	loginMessagePrefix = "rewards-login:"
	nonceBytes         = 24
)

// LoginMessage is the exact payload a wallet signs to redeem nonce.
func LoginMessage(nonce string) string {
	return loginMessagePrefix + nonce
}

// AuthServiceImpl implements ports.AuthService with signed wallet challenges.
type AuthServiceImpl struct {
	challenges   ports.ChallengeStore
	tokenSvc     ports.TokenService
	challengeTTL time.Duration
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(challenges ports.ChallengeStore, tokenSvc ports.TokenService, challengeTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		challenges:   challenges,
		tokenSvc:     tokenSvc,
		challengeTTL: challengeTTL,
	}
}

// Challenge issues a single-use nonce for identity.
func (s *AuthServiceImpl) Challenge(ctx context.Context, identity solana.PublicKey) (*ports.Challenge, error) {
	if identity.IsZero() {
		return nil, apperror.Validation("wallet is required")
	}

	nonce, err := generateNonce()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate nonce: %w", err))
	}

	expiresAt := time.Now().Add(s.challengeTTL)
	if err := s.challenges.Issue(ctx, identity, nonce, s.challengeTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store challenge: %w", err))
	}

	return &ports.Challenge{
		Nonce:     nonce,
		Message:   LoginMessage(nonce),
		ExpiresAt: expiresAt,
	}, nil
}

// Login exchanges a signed challenge for a session token. The nonce is
// consumed before the signature is checked, so a failed attempt burns it.
func (s *AuthServiceImpl) Login(ctx context.Context, identity solana.PublicKey, nonce string, signature string) (string, time.Time, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return "", time.Time{}, apperror.ErrInvalidSignature()
	}

	outstanding, err := s.challenges.Consume(ctx, identity, nonce)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("consume challenge: %w", err))
	}
	if !outstanding {
		return "", time.Time{}, apperror.ErrChallengeExpired()
	}

	if !sig.Verify(identity, []byte(LoginMessage(nonce))) {
		return "", time.Time{}, apperror.ErrInvalidSignature()
	}

	token, expiry, err := s.tokenSvc.Generate(identity)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

func generateNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base58.Encode(buf), nil
}
