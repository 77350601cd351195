// =============================
// File: internal/multihub/client.go
// =============================
package multihub

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/blockchain"
	"github.com/rovshanmuradov/multihub-swap/internal/blockchain/solbc"
	"github.com/rovshanmuradov/multihub-swap/internal/wallet"
)

// Client submits Multi-Hub Swap instructions. It holds no protocol state of
// its own: all shared state lives on-chain and is arbitrated by the program.
type Client struct {
	rpc    blockchain.Client
	wallet *wallet.Wallet
	logger *zap.Logger
	config *Config
	retry  RetryPolicy

	// phaseHook, when set, observes every two-phase transition. Used by the
	// admin server for progress reporting and by tests.
	phaseHook func(SwapPhase)
}

// New wires a protocol client from its dependencies.
func New(rpcClient blockchain.Client, w *wallet.Wallet, logger *zap.Logger, cfg *Config, policy RetryPolicy) (*Client, error) {
	if rpcClient == nil || w == nil || logger == nil || cfg == nil {
		return nil, fmt.Errorf("rpc client, wallet, logger and config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		rpc:    rpcClient,
		wallet: w,
		logger: logger.Named("multihub"),
		config: cfg,
		retry:  policy,
	}, nil
}

// OnPhase registers a hook observing two-phase protocol transitions.
func (c *Client) OnPhase(hook func(SwapPhase)) {
	c.phaseHook = hook
}

// Config exposes the injected protocol configuration.
func (c *Client) Config() *Config { return c.config }

// User returns the public key of the signing wallet.
func (c *Client) User() solana.PublicKey { return c.wallet.PublicKey }

func (c *Client) setPhase(p SwapPhase) {
	c.logger.Debug("Phase transition", zap.String("phase", p.String()))
	if c.phaseHook != nil {
		c.phaseHook(p)
	}
}

// sendAndConfirm builds, signs, submits and waits for one transaction. Send
// failures are classified once here; only network-class failures remain
// visible to retry loops above.
func (c *Client) sendAndConfirm(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	liqPDA, _, err := DeriveLiquidityContribution(c.config.ProgramID, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}

	blockhash, err := c.rpc.GetRecentBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, &NetworkError{Op: "get recent blockhash", Err: err}
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(c.wallet.PublicKey),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("create transaction: %w", err)
	}

	if err := c.wallet.SignTransaction(tx); err != nil {
		return solana.Signature{}, fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, blockchain.TransactionOptions{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentProcessed,
	})
	if err != nil {
		return solana.Signature{}, ClassifySubmissionError(err, liqPDA)
	}
	c.logger.Info("Transaction sent", zap.String("signature", sig.String()))

	if err := c.rpc.WaitForTransactionConfirmation(ctx, sig, rpc.CommitmentConfirmed); err != nil {
		return sig, &NetworkError{Op: "await confirmation", Err: err}
	}
	c.logger.Info("Transaction confirmed", zap.String("signature", sig.String()))
	return sig, nil
}

// SolBalance returns the signing wallet's lamport balance.
func (c *Client) SolBalance(ctx context.Context) (uint64, error) {
	balance, err := c.rpc.GetBalance(ctx, c.wallet.PublicKey, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, &NetworkError{Op: "get balance", Err: err}
	}
	return balance, nil
}

// LiquidityAccountExists reports whether the user's liquidity contribution
// PDA already holds allocated data. Absence is not an error: it is the
// AccountMissing branch of the two-phase protocol.
func (c *Client) LiquidityAccountExists(ctx context.Context) (bool, error) {
	liqPDA, _, err := DeriveLiquidityContribution(c.config.ProgramID, c.wallet.PublicKey)
	if err != nil {
		return false, err
	}
	info, err := c.rpc.GetAccountInfo(ctx, liqPDA)
	if err != nil {
		if solbc.IsAccountNotFoundError(err) {
			return false, nil
		}
		return false, &NetworkError{Op: "get liquidity contribution account", Err: err}
	}
	return info != nil && info.Value != nil && len(info.Value.Data.GetBinary()) > 0, nil
}

// FetchProgramState reads and decodes the global state account.
func (c *Client) FetchProgramState(ctx context.Context) (*ProgramState, error) {
	statePDA, _, err := DeriveProgramState(c.config.ProgramID)
	if err != nil {
		return nil, err
	}
	info, err := c.rpc.GetAccountInfo(ctx, statePDA)
	if err != nil {
		return nil, &NetworkError{Op: "get program state", Err: err}
	}
	if info == nil || info.Value == nil {
		return nil, fmt.Errorf("program state account %s not found: program not initialized", statePDA.String())
	}
	return UnpackProgramState(info.Value.Data.GetBinary())
}

// FetchLiquidityContribution reads and decodes a user's contribution account.
func (c *Client) FetchLiquidityContribution(ctx context.Context, user solana.PublicKey) (*LiquidityContribution, error) {
	liqPDA, _, err := DeriveLiquidityContribution(c.config.ProgramID, user)
	if err != nil {
		return nil, err
	}
	info, err := c.rpc.GetAccountInfo(ctx, liqPDA)
	if err != nil {
		if solbc.IsAccountNotFoundError(err) {
			return nil, fmt.Errorf("no liquidity contribution account for %s", user.String())
		}
		return nil, &NetworkError{Op: "get liquidity contribution account", Err: err}
	}
	if info == nil || info.Value == nil {
		return nil, fmt.Errorf("no liquidity contribution account for %s", user.String())
	}
	return UnpackLiquidityContribution(info.Value.Data.GetBinary())
}
