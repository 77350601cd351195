// =============================
// File: internal/multihub/swap_test.go
// =============================
package multihub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/blockchain"
	"github.com/rovshanmuradov/multihub-swap/internal/wallet"
)

// fakeRPC implements blockchain.Client in memory. It records the opcode of
// every submitted transaction and can fail sends with scripted errors.
type fakeRPC struct {
	mu        sync.Mutex
	accounts  map[solana.PublicKey][]byte
	sendErrs  []error
	sentOps   []Opcode
	liqPDA    solana.PublicKey
	sigSeq    byte
	simResult *blockchain.SimulationResult
	simOps    []Opcode
	balance   uint64
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{accounts: make(map[solana.PublicKey][]byte)}
}

func (f *fakeRPC) GetRecentBlockhash(ctx context.Context) (solana.Hash, error) {
	return solana.Hash{1}, nil
}

func (f *fakeRPC) GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.accounts[pubkey]
	if !ok {
		return nil, errors.New("account not found")
	}
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{Data: accountData(data)},
	}, nil
}

// accountData packs raw bytes the same way the RPC wire format delivers them.
func accountData(data []byte) *rpc.DataBytesOrJSON {
	raw, err := json.Marshal([]string{base64.StdEncoding.EncodeToString(data), "base64"})
	if err != nil {
		panic(err)
	}
	var d rpc.DataBytesOrJSON
	if err := json.Unmarshal(raw, &d); err != nil {
		panic(err)
	}
	return &d
}

func (f *fakeRPC) GetSignatureStatuses(ctx context.Context, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return &rpc.GetSignatureStatusesResult{}, nil
}

func (f *fakeRPC) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts blockchain.TransactionOptions) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	op := Opcode(tx.Message.Instructions[0].Data[0])
	f.sentOps = append(f.sentOps, op)

	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			return solana.Signature{}, err
		}
	}

	// A confirmed creation makes the contribution account visible.
	if op == OpCreateLiquidityAccount {
		f.accounts[f.liqPDA] = make([]byte, liquidityContributionLen)
	}

	f.sigSeq++
	var sig solana.Signature
	sig[0] = f.sigSeq
	return sig, nil
}

func (f *fakeRPC) SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*blockchain.SimulationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.simOps = append(f.simOps, Opcode(tx.Message.Instructions[0].Data[0]))
	if f.simResult != nil {
		return f.simResult, nil
	}
	return &blockchain.SimulationResult{}, nil
}

func (f *fakeRPC) GetBalance(ctx context.Context, pubkey solana.PublicKey, commitment rpc.CommitmentType) (uint64, error) {
	return f.balance, nil
}

func (f *fakeRPC) WaitForTransactionConfirmation(ctx context.Context, signature solana.Signature, commitment rpc.CommitmentType) error {
	return nil
}

func (f *fakeRPC) ops() []Opcode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Opcode(nil), f.sentOps...)
}

func newTestClient(t *testing.T) (*Client, *fakeRPC) {
	t.Helper()

	w, err := wallet.NewWallet(solana.NewWallet().PrivateKey.String())
	require.NoError(t, err)

	cfg := testConfig(t)
	fake := newFakeRPC()
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, w.PublicKey)
	require.NoError(t, err)
	fake.liqPDA = liqPDA

	policy := RetryPolicy{MaxAttempts: 2, MaxElapsed: time.Second, InitialInterval: time.Millisecond}
	client, err := New(fake, w, zap.NewNop(), cfg, policy)
	require.NoError(t, err)
	return client, fake
}

func TestExecuteSwapCreatesMissingAccount(t *testing.T) {
	client, fake := newTestClient(t)

	var phases []SwapPhase
	client.OnPhase(func(p SwapPhase) { phases = append(phases, p) })

	sig, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  10_000_000,
	})
	require.NoError(t, err)
	assert.NotEqual(t, solana.Signature{}, sig)

	// Creation must be submitted and confirmed before the swap goes out.
	assert.Equal(t, []Opcode{OpCreateLiquidityAccount, OpSolToYotSwapImmediate}, fake.ops())
	assert.Equal(t, []SwapPhase{
		PhaseNeedsAccountCheck,
		PhaseAccountMissing,
		PhaseAccountCreationSubmitted,
		PhaseAccountCreationConfirmed,
		PhaseSwapSubmitted,
		PhaseSwapConfirmed,
	}, phases)
}

func TestExecuteSwapSkipsCreationWhenAccountPresent(t *testing.T) {
	client, fake := newTestClient(t)
	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)

	var phases []SwapPhase
	client.OnPhase(func(p SwapPhase) { phases = append(phases, p) })

	_, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: YotToSol,
		AmountIn:  5_000,
	})
	require.NoError(t, err)

	assert.Equal(t, []Opcode{OpYotToSolSwapImmediate}, fake.ops())
	assert.Equal(t, []SwapPhase{
		PhaseNeedsAccountCheck,
		PhaseAccountPresent,
		PhaseSwapSubmitted,
		PhaseSwapConfirmed,
	}, phases)
}

func TestExecuteSwapRetriesOnceOnBorrowConflict(t *testing.T) {
	client, fake := newTestClient(t)
	// The existence check raced another writer: the account looks present but
	// the swap still hits the borrow conflict.
	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)
	fake.sendErrs = []error{errors.New("Account already borrowed")}

	_, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  10_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, []Opcode{
		OpSolToYotSwapImmediate,
		OpCreateLiquidityAccount,
		OpSolToYotSwapImmediate,
	}, fake.ops())
}

func TestExecuteSwapConflictSurfacesAfterSingleRetry(t *testing.T) {
	client, fake := newTestClient(t)
	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)
	fake.sendErrs = []error{
		errors.New("account already borrowed"),
		nil, // creation succeeds
		errors.New("account already borrowed"),
	}

	_, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  10_000_000,
	})
	require.Error(t, err)
	assert.True(t, IsResourceConflict(err))
	// Exactly one recovery attempt, never a loop.
	assert.Len(t, fake.ops(), 3)
}

func TestExecuteSwapRejectsZeroAmount(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.ExecuteSwap(context.Background(), SwapParams{Direction: SolToYot})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, fake.ops())
}

func TestOnChainErrorIsNotRetried(t *testing.T) {
	client, fake := newTestClient(t)
	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)
	fake.sendErrs = []error{errors.New("custom program error: 0x1774")}

	_, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  1_000,
	})
	require.Error(t, err)
	assert.True(t, IsOnChainError(err))
	assert.Len(t, fake.ops(), 1)
}

func TestNetworkErrorIsRetried(t *testing.T) {
	client, fake := newTestClient(t)
	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)
	fake.sendErrs = []error{errors.New("connection reset by peer"), nil}

	_, err := client.ExecuteSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  1_000,
	})
	require.NoError(t, err)
	assert.Equal(t, []Opcode{OpSolToYotSwapImmediate, OpSolToYotSwapImmediate}, fake.ops())
}

func TestSimulateSwapDoesNotSubmit(t *testing.T) {
	client, fake := newTestClient(t)
	fake.simResult = &blockchain.SimulationResult{
		Logs:          []string{"Program log: Instruction: SolToYotSwapImmediate"},
		UnitsConsumed: 14_200,
	}

	res, err := client.SimulateSwap(context.Background(), SwapParams{
		Direction: SolToYot,
		AmountIn:  10_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(14_200), res.UnitsConsumed)

	// The simulated transaction carries the real swap opcode, but nothing is
	// ever sent and no account creation leg runs.
	assert.Equal(t, []Opcode{OpSolToYotSwapImmediate}, fake.simOps)
	assert.Empty(t, fake.ops())
}

func TestSimulateSwapRejectsZeroAmount(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.SimulateSwap(context.Background(), SwapParams{Direction: YotToSol})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, fake.simOps)
}

func TestSolBalance(t *testing.T) {
	client, fake := newTestClient(t)
	fake.balance = 2_500_000_000

	balance, err := client.SolBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000_000), balance)
}

func TestContributeEnsuresAccountFirst(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.Contribute(context.Background(), 2_000_000)
	require.NoError(t, err)
	assert.Equal(t, []Opcode{OpCreateLiquidityAccount, OpContribute}, fake.ops())

	// Second contribution sees the account and skips creation.
	_, err = client.Contribute(context.Background(), 2_000_000)
	require.NoError(t, err)
	assert.Equal(t, []Opcode{OpCreateLiquidityAccount, OpContribute, OpContribute}, fake.ops())
}

func TestCreateLiquidityAccountIdempotent(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.CreateLiquidityAccount(context.Background())
	require.NoError(t, err)
	_, err = client.CreateLiquidityAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Opcode{OpCreateLiquidityAccount, OpCreateLiquidityAccount}, fake.ops())
}

func TestLiquidityAccountExists(t *testing.T) {
	client, fake := newTestClient(t)

	exists, err := client.LiquidityAccountExists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	// Allocated but empty data still counts as missing.
	fake.accounts[fake.liqPDA] = nil
	exists, err = client.LiquidityAccountExists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	fake.accounts[fake.liqPDA] = make([]byte, liquidityContributionLen)
	exists, err = client.LiquidityAccountExists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}
