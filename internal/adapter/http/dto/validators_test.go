package dto

import (
	"testing"
	"time"

	"smartpay-rewards/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPubkeyValidator(t *testing.T) {
	valid := solana.NewWallet().PublicKey().String()

	cases := []struct {
		name string
		req  any
		ok   bool
	}{
		{"challenge valid", &ChallengeRequest{Identity: valid}, true},
		{"challenge empty", &ChallengeRequest{}, false},
		{"challenge not base58", &ChallengeRequest{Identity: "0OIl-not-a-key"}, false},
		{"challenge short key", &ChallengeRequest{Identity: "abc"}, false},
		{"mint without key", &MintRequest{Amount: 1, TransactionID: "tx"}, true},
		{"mint with key", &MintRequest{Amount: 1, TransactionID: "tx", TransactionKey: strPtr(valid)}, true},
		{"mint with bad key", &MintRequest{Amount: 1, TransactionID: "tx", TransactionKey: strPtr("nope")}, false},
		{"mint without id", &MintRequest{Amount: 1}, false},
		{"initialize defaults", &InitializeRequest{}, true},
		{"initialize bad freeze", &InitializeRequest{FreezeAuthority: strPtr("x")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateRateRequest_ZeroIsPresent(t *testing.T) {
	zero := uint32(0)
	assert.NoError(t, binding.Validator.ValidateStruct(&UpdateRateRequest{NewRateBps: &zero}))
	assert.Error(t, binding.Validator.ValidateStruct(&UpdateRateRequest{}))
}

func TestParseOptionalPubkey(t *testing.T) {
	got, err := ParseOptionalPubkey(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	key := solana.NewWallet().PublicKey()
	got, err = ParseOptionalPubkey(strPtr(key.String()))
	require.NoError(t, err)
	assert.True(t, got.Equals(key))

	_, err = ParseOptionalPubkey(strPtr("invalid"))
	assert.Error(t, err)
}

func TestToEventListResponse_Pages(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.RewardEvent{{ID: uuid.New(), Kind: domain.EventRewardMinted, Amount: 10_000, RewardAmount: 200, TransactionID: "tx-1", CreatedAt: at}}

	resp := ToEventListResponse(events, 41, 2, 20)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "REWARD_MINTED", resp.Items[0].Kind)
	assert.Equal(t, "2026-03-01T12:00:00Z", resp.Items[0].CreatedAt)

	empty := ToEventListResponse(nil, 0, 1, 20)
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.TotalPages)
}
