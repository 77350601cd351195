// =============================
// File: internal/multihub/swap.go
// =============================
package multihub

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/blockchain"
)

// ExecuteSwap runs the full two-phase swap protocol:
//
//  1. check whether the user's liquidity contribution account exists;
//  2. if missing, submit the dedicated create instruction (opcode 7) and
//     wait for on-chain confirmation;
//  3. submit the swap instruction.
//
// The program cannot create the contribution account and swap in one
// instruction without borrowing the account twice, so the creation must be
// confirmed in its own transaction first. If the swap still comes back with
// the borrow-conflict error (the existence check raced another writer), the
// account is created explicitly and the swap retried exactly once before the
// failure is surfaced.
func (c *Client) ExecuteSwap(ctx context.Context, params SwapParams) (solana.Signature, error) {
	if err := params.Validate(); err != nil {
		return solana.Signature{}, err
	}

	c.setPhase(PhaseNeedsAccountCheck)
	exists, err := c.LiquidityAccountExists(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	if exists {
		c.setPhase(PhaseAccountPresent)
	} else {
		c.setPhase(PhaseAccountMissing)
		if _, err := c.CreateLiquidityAccount(ctx); err != nil {
			return solana.Signature{}, err
		}
	}

	sig, err := c.submitSwap(ctx, params)
	if err != nil && IsResourceConflict(err) {
		c.logger.Warn("Swap hit borrow conflict, creating liquidity account and retrying once",
			zap.String("direction", params.Direction.String()),
			zap.Error(err))
		if _, cerr := c.CreateLiquidityAccount(ctx); cerr != nil {
			return solana.Signature{}, cerr
		}
		sig, err = c.submitSwap(ctx, params)
	}
	if err != nil {
		return sig, err
	}

	c.setPhase(PhaseSwapConfirmed)
	c.logger.Info("Swap confirmed",
		zap.String("signature", sig.String()),
		zap.String("direction", params.Direction.String()),
		zap.Uint64("amount_in", params.AmountIn),
		zap.Uint64("min_amount_out", params.MinAmountOut))
	return sig, nil
}

// CreateLiquidityAccount submits opcode 7 and waits for confirmation. Safe to
// call when the account already exists: the program treats that as a no-op.
func (c *Client) CreateLiquidityAccount(ctx context.Context) (solana.Signature, error) {
	ix, err := BuildCreateLiquidityAccountInstruction(c.config, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}

	c.setPhase(PhaseAccountCreationSubmitted)
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return solana.Signature{}, err
	}
	c.setPhase(PhaseAccountCreationConfirmed)
	c.logger.Info("Liquidity contribution account created", zap.String("signature", sig.String()))
	return sig, nil
}

// swapInstruction encodes the swap leg for the requested direction.
func (c *Client) swapInstruction(params SwapParams) (solana.Instruction, error) {
	if params.Direction == YotToSol {
		return BuildYotToSolSwapInstruction(c.config, c.wallet.PublicKey, params.AmountIn, params.MinAmountOut)
	}
	return BuildSolToYotSwapInstruction(c.config, c.wallet.PublicKey, params.AmountIn, params.MinAmountOut)
}

// submitSwap encodes and submits the swap leg for the requested direction.
func (c *Client) submitSwap(ctx context.Context, params SwapParams) (solana.Signature, error) {
	ix, err := c.swapInstruction(params)
	if err != nil {
		return solana.Signature{}, err
	}

	c.setPhase(PhaseSwapSubmitted)
	return c.submitWithRetry(ctx, []solana.Instruction{ix})
}

// SimulateSwap dry-runs the swap leg against current cluster state without
// submitting anything. The program's own account validation and the compute
// cost come back in the simulation result; the liquidity contribution account
// is not created, so a simulation against a fresh wallet reports the same
// failure a premature swap would.
func (c *Client) SimulateSwap(ctx context.Context, params SwapParams) (*blockchain.SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ix, err := c.swapInstruction(params)
	if err != nil {
		return nil, err
	}

	blockhash, err := c.rpc.GetRecentBlockhash(ctx)
	if err != nil {
		return nil, &NetworkError{Op: "get recent blockhash", Err: err}
	}
	tx, err := solana.NewTransaction(
		[]solana.Instruction{ix},
		blockhash,
		solana.TransactionPayer(c.wallet.PublicKey),
	)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if err := c.wallet.SignTransaction(tx); err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	result, err := c.rpc.SimulateTransaction(ctx, tx)
	if err != nil {
		return nil, &NetworkError{Op: "simulate transaction", Err: err}
	}
	return result, nil
}

// submitWithRetry drives sendAndConfirm under the injected retry policy.
// Only network-class failures are retried: validation errors never reach the
// network and on-chain or conflict errors are terminal for the policy (the
// conflict gets its single dedicated retry in ExecuteSwap instead).
func (c *Client) submitWithRetry(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	return backoff.Retry(ctx, func() (solana.Signature, error) {
		sig, err := c.sendAndConfirm(ctx, instructions)
		if err != nil && !isRetryable(err) {
			return sig, backoff.Permanent(err)
		}
		return sig, err
	}, c.retry.options()...)
}

func isRetryable(err error) bool {
	if IsValidationError(err) || IsOnChainError(err) || IsResourceConflict(err) {
		return false
	}
	return true
}
