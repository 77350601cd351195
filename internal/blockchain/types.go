// internal/blockchain/types.go
package blockchain

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// TransactionOptions defines submission options.
type TransactionOptions struct {
	SkipPreflight       bool
	PreflightCommitment rpc.CommitmentType
}

// SimulationResult is the outcome of a transaction simulation.
type SimulationResult struct {
	Err           interface{}
	Logs          []string
	UnitsConsumed uint64
}

// Client is the RPC surface the protocol layer depends on. The concrete
// implementation lives in solbc; tests substitute fakes.
type Client interface {
	// GetRecentBlockhash returns the latest blockhash for transaction assembly.
	GetRecentBlockhash(ctx context.Context) (solana.Hash, error)
	// GetAccountInfo fetches a single account.
	GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	// GetSignatureStatuses fetches confirmation statuses.
	GetSignatureStatuses(ctx context.Context, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	// SendTransactionWithOpts submits a signed transaction.
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts TransactionOptions) (solana.Signature, error)
	// SimulateTransaction dry-runs a transaction against current cluster state.
	SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*SimulationResult, error)
	// GetBalance returns the lamport balance of an account.
	GetBalance(ctx context.Context, pubkey solana.PublicKey, commitment rpc.CommitmentType) (uint64, error)
	// WaitForTransactionConfirmation blocks until the signature confirms.
	WaitForTransactionConfirmation(ctx context.Context, signature solana.Signature, commitment rpc.CommitmentType) error
}
