package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/locator"
	"smartpay-rewards/internal/core/ports"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const tokenAccountColumns = `address, mint, owner, amount, created_at, updated_at`

// TokenLedger implements ports.TokenLedger on the token_mints and
// token_accounts tables. Associated accounts live at locator.TokenAccount.
type TokenLedger struct {
	pool    Pool
	locator *locator.Locator
}

// NewTokenLedger creates a new TokenLedger.
func NewTokenLedger(pool Pool, loc *locator.Locator) *TokenLedger {
	return &TokenLedger{pool: pool, locator: loc}
}

// CreateMint registers a mint with zero supply.
func (l *TokenLedger) CreateMint(ctx context.Context, tx pgx.Tx, m *domain.TokenMint) (bool, error) {
	var freeze *string
	if m.FreezeAuthority != nil {
		s := m.FreezeAuthority.String()
		freeze = &s
	}

	query := `INSERT INTO token_mints (address, decimals, mint_authority, freeze_authority, supply, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (address) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		m.Address.String(), int16(m.Decimals), m.MintAuthority.String(), freeze, toNumeric(0), m.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert token mint: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetMint fetches a mint (without locking).
func (l *TokenLedger) GetMint(ctx context.Context, mint solana.PublicKey) (*domain.TokenMint, error) {
	query := `SELECT address, decimals, mint_authority, freeze_authority, supply, created_at
		FROM token_mints WHERE address = $1`

	return l.scanMint(l.pool.QueryRow(ctx, query, mint.String()))
}

// MintTo credits owner's associated account after checking that authority is
// both the mint's recorded authority and a valid program-state derivation.
func (l *TokenLedger) MintTo(ctx context.Context, tx pgx.Tx, mint solana.PublicKey, authority domain.MintAuthority, owner solana.PublicKey, amount uint64) (*domain.TokenAccount, error) {
	query := `SELECT address, decimals, mint_authority, freeze_authority, supply, created_at
		FROM token_mints WHERE address = $1 FOR UPDATE`

	m, err := l.scanMint(tx.QueryRow(ctx, query, mint.String()))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ports.ErrLedgerMintNotFound
	}

	proof := domain.DerivedKey{Address: authority.Address, Bump: authority.Bump}
	if !m.MintAuthority.Equals(authority.Address) || !l.locator.Verify(proof, locator.NamespaceProgramState) {
		return nil, ports.ErrLedgerUnauthorized
	}

	supply, err := domain.CheckedAdd(m.Supply, amount)
	if err != nil {
		return nil, err
	}
	key, err := l.locator.TokenAccount(mint, owner)
	if err != nil {
		return nil, fmt.Errorf("derive token account: %w", err)
	}

	upsert := `INSERT INTO token_accounts (address, mint, owner, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (address) DO UPDATE SET amount = token_accounts.amount + EXCLUDED.amount, updated_at = NOW()
		RETURNING ` + tokenAccountColumns

	account, err := l.scanAccount(tx.QueryRow(ctx, upsert, key.Address.String(), mint.String(), owner.String(), toNumeric(amount)))
	if err != nil {
		return nil, fmt.Errorf("credit token account: %w", err)
	}

	if err := l.setSupply(ctx, tx, mint, supply); err != nil {
		return nil, err
	}
	return account, nil
}

// Burn debits the authorized owner's associated account and the mint supply.
func (l *TokenLedger) Burn(ctx context.Context, tx pgx.Tx, mint solana.PublicKey, auth domain.OwnerAuthorization, amount uint64) (*domain.TokenAccount, error) {
	key, err := l.locator.TokenAccount(mint, auth.Owner())
	if err != nil {
		return nil, fmt.Errorf("derive token account: %w", err)
	}

	account, err := l.accountForUpdate(ctx, tx, key.Address)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ports.ErrLedgerAccountNotFound
	}
	if !account.Mint.Equals(mint) || !auth.Permits(account.Owner) {
		return nil, ports.ErrLedgerUnauthorized
	}
	if account.Amount < amount {
		return nil, ports.ErrLedgerInsufficientFunds
	}

	m, err := l.scanMint(tx.QueryRow(ctx,
		`SELECT address, decimals, mint_authority, freeze_authority, supply, created_at
		FROM token_mints WHERE address = $1 FOR UPDATE`, mint.String()))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ports.ErrLedgerMintNotFound
	}

	tag, err := tx.Exec(ctx,
		`UPDATE token_accounts SET amount = $1, updated_at = NOW() WHERE address = $2`,
		toNumeric(account.Amount-amount), key.Address.String())
	if err != nil {
		return nil, fmt.Errorf("debit token account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ports.ErrLedgerAccountNotFound
	}

	if err := l.setSupply(ctx, tx, mint, m.Supply-amount); err != nil {
		return nil, err
	}

	account.Amount -= amount
	return account, nil
}

// BalanceOf returns the owner's balance, or 0 when no account exists yet.
func (l *TokenLedger) BalanceOf(ctx context.Context, mint, owner solana.PublicKey) (uint64, error) {
	key, err := l.locator.TokenAccount(mint, owner)
	if err != nil {
		return 0, fmt.Errorf("derive token account: %w", err)
	}
	var amount pgtype.Numeric
	err = l.pool.QueryRow(ctx, `SELECT amount FROM token_accounts WHERE address = $1`, key.Address.String()).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get token balance: %w", err)
	}
	return fromNumeric("amount", amount)
}

// BalanceOfForUpdate reads and locks the owner's balance.
// This MUST be called within a transaction.
func (l *TokenLedger) BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, mint, owner solana.PublicKey) (uint64, error) {
	key, err := l.locator.TokenAccount(mint, owner)
	if err != nil {
		return 0, fmt.Errorf("derive token account: %w", err)
	}
	account, err := l.accountForUpdate(ctx, tx, key.Address)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Amount, nil
}

func (l *TokenLedger) accountForUpdate(ctx context.Context, tx pgx.Tx, address solana.PublicKey) (*domain.TokenAccount, error) {
	query := `SELECT ` + tokenAccountColumns + ` FROM token_accounts WHERE address = $1 FOR UPDATE`

	account, err := l.scanAccount(tx.QueryRow(ctx, query, address.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock token account: %w", err)
	}
	return account, nil
}

func (l *TokenLedger) setSupply(ctx context.Context, tx pgx.Tx, mint solana.PublicKey, supply uint64) error {
	tag, err := tx.Exec(ctx, `UPDATE token_mints SET supply = $1 WHERE address = $2`, toNumeric(supply), mint.String())
	if err != nil {
		return fmt.Errorf("update mint supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrLedgerMintNotFound
	}
	return nil
}

// scanAccount passes pgx.ErrNoRows through so callers decide what absence means.
func (l *TokenLedger) scanAccount(row pgx.Row) (*domain.TokenAccount, error) {
	var (
		address, mint, owner string
		amount               pgtype.Numeric
	)
	a := &domain.TokenAccount{}
	if err := row.Scan(&address, &mint, &owner, &amount, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if a.Address, err = parseKey("address", address); err != nil {
		return nil, err
	}
	if a.Mint, err = parseKey("mint", mint); err != nil {
		return nil, err
	}
	if a.Owner, err = parseKey("owner", owner); err != nil {
		return nil, err
	}
	if a.Amount, err = fromNumeric("amount", amount); err != nil {
		return nil, err
	}
	return a, nil
}

func (l *TokenLedger) scanMint(row pgx.Row) (*domain.TokenMint, error) {
	var (
		address, authority string
		freeze             *string
		decimals           int16
		supply             pgtype.Numeric
	)
	m := &domain.TokenMint{}
	err := row.Scan(&address, &decimals, &authority, &freeze, &supply, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan token mint: %w", err)
	}

	if m.Address, err = parseKey("address", address); err != nil {
		return nil, err
	}
	if m.MintAuthority, err = parseKey("mint_authority", authority); err != nil {
		return nil, err
	}
	if freeze != nil {
		fa, err := parseKey("freeze_authority", *freeze)
		if err != nil {
			return nil, err
		}
		m.FreezeAuthority = &fa
	}
	if m.Supply, err = fromNumeric("supply", supply); err != nil {
		return nil, err
	}
	m.Decimals = uint8(decimals)
	return m, nil
}
