package dto

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pubkey", validatePubkey)
	}
}

// validatePubkey accepts a base58-encoded 32-byte public key.
func validatePubkey(fl validator.FieldLevel) bool {
	_, err := ParsePubkey(fl.Field().String())
	return err == nil
}

// ParsePubkey decodes a base58 wallet or account address.
func ParsePubkey(s string) (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(s)
}

// ParseOptionalPubkey decodes s when present.
func ParseOptionalPubkey(s *string) (*solana.PublicKey, error) {
	if s == nil {
		return nil, nil
	}
	key, err := ParsePubkey(*s)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
