// =============================
// File: internal/multihub/client_test.go
// =============================
package multihub

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/wallet"
)

func TestNewRejectsNilDependencies(t *testing.T) {
	w, err := wallet.NewWallet(solana.NewWallet().PrivateKey.String())
	require.NoError(t, err)
	cfg := testConfig(t)

	_, err = New(nil, w, zap.NewNop(), cfg, DefaultRetryPolicy())
	assert.Error(t, err)
	_, err = New(newFakeRPC(), nil, zap.NewNop(), cfg, DefaultRetryPolicy())
	assert.Error(t, err)
	_, err = New(newFakeRPC(), w, nil, cfg, DefaultRetryPolicy())
	assert.Error(t, err)
	_, err = New(newFakeRPC(), w, zap.NewNop(), nil, DefaultRetryPolicy())
	assert.Error(t, err)
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	w, err := wallet.NewWallet(solana.NewWallet().PrivateKey.String())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.YotPool = solana.PublicKey{}
	_, err = New(newFakeRPC(), w, zap.NewNop(), cfg, DefaultRetryPolicy())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestFetchProgramState(t *testing.T) {
	client, fake := newTestClient(t)

	statePDA, _, err := DeriveProgramState(client.Config().ProgramID)
	require.NoError(t, err)

	admin := solana.NewWallet().PublicKey()
	liqWallet := solana.NewWallet().PublicKey()
	fake.accounts[statePDA] = packState(t, admin,
		client.Config().YotMint, client.Config().YosMint,
		[5]uint64{20, 0, 5, 1, 0}, &liqWallet, 100_000_000)

	state, err := client.FetchProgramState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, admin, state.Admin)
	assert.Equal(t, uint64(20), state.Rates.LpContribution)
	assert.Equal(t, liqWallet, state.LiquidityWallet)
}

func TestFetchProgramStateNotInitialized(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.FetchProgramState(context.Background())
	assert.Error(t, err)
}

func TestFetchLiquidityContributionMissing(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.FetchLiquidityContribution(context.Background(), client.User())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no liquidity contribution account")
}
