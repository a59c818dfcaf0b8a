// Package locator derives the deterministic addresses of every record the
// rewards engines read or write. An address is a program-derived address of
// a namespace tag plus identifying fields under the configured program ID.
package locator

import (
	"fmt"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
)

// Namespaces separate record types so their keys can never collide.
const (
	NamespaceProgramState = "program_state"
	NamespaceMint         = "mint"
	NamespaceTransaction  = "transaction"
	NamespaceUserRewards  = "user_rewards"
	NamespaceTokenAccount = "token_account"
)

// Locator computes derived keys under a single program ID.
type Locator struct {
	programID solana.PublicKey
}

// New returns a Locator for programID.
func New(programID solana.PublicKey) *Locator {
	return &Locator{programID: programID}
}

// NewFromBase58 parses programID and returns a Locator for it.
func NewFromBase58(programID string) (*Locator, error) {
	pk, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("parsing program id: %w", err)
	}
	return New(pk), nil
}

// ProgramID returns the program the locator derives under.
func (l *Locator) ProgramID() solana.PublicKey {
	return l.programID
}

// Locate derives the key for namespace and fields. It is pure: equal inputs
// always give the same key and bump.
func (l *Locator) Locate(namespace string, fields ...[]byte) (domain.DerivedKey, error) {
	seeds, err := buildSeeds(namespace, fields)
	if err != nil {
		return domain.DerivedKey{}, err
	}
	addr, bump, err := solana.FindProgramAddress(seeds, l.programID)
	if err != nil {
		return domain.DerivedKey{}, fmt.Errorf("deriving %s address: %w", namespace, err)
	}
	return domain.DerivedKey{Address: addr, Bump: bump}, nil
}

// Verify reports whether key is the derivation of namespace and fields
// using key's own bump.
func (l *Locator) Verify(key domain.DerivedKey, namespace string, fields ...[]byte) bool {
	seeds, err := buildSeeds(namespace, fields)
	if err != nil {
		return false
	}
	seeds = append(seeds, []byte{key.Bump})
	addr, err := solana.CreateProgramAddress(seeds, l.programID)
	if err != nil {
		return false
	}
	return addr.Equals(key.Address)
}

func (l *Locator) ProgramState() (domain.DerivedKey, error) {
	return l.Locate(NamespaceProgramState)
}

func (l *Locator) Mint() (domain.DerivedKey, error) {
	return l.Locate(NamespaceMint)
}

func (l *Locator) Transaction(transactionID string) (domain.DerivedKey, error) {
	return l.Locate(NamespaceTransaction, []byte(transactionID))
}

func (l *Locator) UserRewards(user solana.PublicKey) (domain.DerivedKey, error) {
	return l.Locate(NamespaceUserRewards, user.Bytes())
}

// TokenAccount derives the associated token account of owner for mint.
func (l *Locator) TokenAccount(mint, owner solana.PublicKey) (domain.DerivedKey, error) {
	return l.Locate(NamespaceTokenAccount, mint.Bytes(), owner.Bytes())
}

// buildSeeds splits fields longer than solana.MaxSeedLength into consecutive
// chunks. A 64-byte transaction ID becomes two seeds.
func buildSeeds(namespace string, fields [][]byte) ([][]byte, error) {
	seeds := [][]byte{[]byte(namespace)}
	for _, f := range fields {
		for start := 0; start < len(f); start += solana.MaxSeedLength {
			end := start + solana.MaxSeedLength
			if end > len(f) {
				end = len(f)
			}
			seeds = append(seeds, f[start:end])
		}
	}
	// One slot is reserved for the bump.
	if len(seeds) > solana.MaxSeeds-1 {
		return nil, fmt.Errorf("%s: %d seeds exceed limit of %d", namespace, len(seeds), solana.MaxSeeds-1)
	}
	return seeds, nil
}
