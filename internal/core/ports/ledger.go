package ports

//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks

import (
	"context"
	"errors"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
)

// Ledger faults. Engines map these onto their own error codes.
var (
	ErrLedgerInsufficientFunds = errors.New("ledger: insufficient funds")
	ErrLedgerUnauthorized      = errors.New("ledger: unauthorized")
	ErrLedgerMintNotFound      = errors.New("ledger: mint not found")
	ErrLedgerAccountNotFound   = errors.New("ledger: token account not found")
)

// TokenLedger is the fungible-token collaborator. Every mutating call joins
// the caller's transaction so the ledger and the reward records commit or
// roll back together.
type TokenLedger interface {
	// CreateMint registers the reward token; it returns false if the mint exists.
	CreateMint(ctx context.Context, tx pgx.Tx, mint *domain.TokenMint) (bool, error)
	GetMint(ctx context.Context, mint solana.PublicKey) (*domain.TokenMint, error)
	// MintTo credits owner's associated account, creating it on first use.
	// authority must be the mint's recorded authority and carry a valid bump.
	MintTo(ctx context.Context, tx pgx.Tx, mint solana.PublicKey, authority domain.MintAuthority, owner solana.PublicKey, amount uint64) (*domain.TokenAccount, error)
	// Burn debits the authorized owner's account.
	Burn(ctx context.Context, tx pgx.Tx, mint solana.PublicKey, auth domain.OwnerAuthorization, amount uint64) (*domain.TokenAccount, error)
	// BalanceOf returns 0 when the owner has no account yet.
	BalanceOf(ctx context.Context, mint, owner solana.PublicKey) (uint64, error)
	BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, mint, owner solana.PublicKey) (uint64, error)
}
