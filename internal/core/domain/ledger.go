package domain

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// TokenMint describes the reward token.
type TokenMint struct {
	Address         solana.PublicKey  `json:"address"`
	Decimals        uint8             `json:"decimals"`
	MintAuthority   solana.PublicKey  `json:"mint_authority"`
	FreezeAuthority *solana.PublicKey `json:"freeze_authority,omitempty"`
	Supply          uint64            `json:"supply"`
	CreatedAt       time.Time         `json:"created_at"`
}

// TokenAccount is the associated balance of one owner for one mint.
type TokenAccount struct {
	Address   solana.PublicKey `json:"address"`
	Mint      solana.PublicKey `json:"mint"`
	Owner     solana.PublicKey `json:"owner"`
	Amount    uint64           `json:"amount"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// MintAuthority is the program's proof that it controls minting: the
// program state address plus its bump.
type MintAuthority struct {
	Address solana.PublicKey
	Bump    uint8
}

// OwnerAuthorization permits burning from an owner's token account. It is
// only built from an authenticated session.
type OwnerAuthorization struct {
	owner solana.PublicKey
}

// AuthorizeOwner wraps an authenticated identity.
func AuthorizeOwner(owner solana.PublicKey) OwnerAuthorization {
	return OwnerAuthorization{owner: owner}
}

// Owner returns the identity the authorization was issued for.
func (a OwnerAuthorization) Owner() solana.PublicKey {
	return a.owner
}

// Permits reports whether the authorization covers burning from owner's account.
func (a OwnerAuthorization) Permits(owner solana.PublicKey) bool {
	return !a.owner.IsZero() && a.owner.Equals(owner)
}
