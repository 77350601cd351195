// =============================
// File: internal/multihub/operations.go
// =============================
package multihub

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// The remaining program operations. Each follows the same shape: validate
// locally, build the instruction from the injected config, submit under the
// retry policy. Operations that write the liquidity contribution account
// (Contribute, BuyAndDistribute) reuse the two-phase guard.

// Contribute deposits YOT into the pool outside of a swap (opcode 2).
func (c *Client) Contribute(ctx context.Context, amount uint64) (solana.Signature, error) {
	if amount == 0 {
		return solana.Signature{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := c.ensureLiquidityAccount(ctx); err != nil {
		return solana.Signature{}, err
	}
	ix, err := BuildContributeInstruction(c.config, c.wallet.PublicKey, amount)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.submitWithRetry(ctx, []solana.Instruction{ix})
}

// BuyAndDistribute submits opcode 4; the program splits the amount between
// the user, the liquidity pool and YOS cashback.
func (c *Client) BuyAndDistribute(ctx context.Context, amount uint64) (solana.Signature, error) {
	if amount == 0 {
		return solana.Signature{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := c.ensureLiquidityAccount(ctx); err != nil {
		return solana.Signature{}, err
	}
	ix, err := BuildBuyAndDistributeInstruction(c.config, c.wallet.PublicKey, amount)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.submitWithRetry(ctx, []solana.Instruction{ix})
}

// ClaimRewards claims accrued YOS for the signing wallet (opcode 3).
func (c *Client) ClaimRewards(ctx context.Context) (solana.Signature, error) {
	ix, err := BuildClaimRewardsInstruction(c.config, c.wallet.PublicKey, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return sig, err
	}
	c.logger.Info("Rewards claimed", zap.String("signature", sig.String()))
	return sig, nil
}

// WithdrawLiquidity returns the full contribution to the user (opcode 5).
func (c *Client) WithdrawLiquidity(ctx context.Context) (solana.Signature, error) {
	ix, err := BuildWithdrawLiquidityInstruction(c.config, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return sig, err
	}
	c.logger.Info("Liquidity withdrawn", zap.String("signature", sig.String()))
	return sig, nil
}

// Initialize creates the program state account (opcode 0). Admin only; fails
// on-chain if the state PDA already exists.
func (c *Client) Initialize(ctx context.Context) (solana.Signature, error) {
	ix, err := BuildInitializeInstruction(c.config, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return sig, err
	}
	c.logger.Info("Program state initialized", zap.String("signature", sig.String()))
	return sig, nil
}

// UpdateParameters submits new rates (opcode 6). Rates are validated locally
// before anything is encoded; the program re-checks the admin signer.
func (c *Client) UpdateParameters(ctx context.Context, rates Rates) (solana.Signature, error) {
	if err := rates.Validate(); err != nil {
		return solana.Signature{}, err
	}
	ix, err := BuildUpdateParametersInstruction(c.config, c.wallet.PublicKey, rates)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return sig, err
	}
	c.logger.Info("Program parameters updated",
		zap.String("signature", sig.String()),
		zap.Uint64("lp_contribution_rate", rates.LpContribution),
		zap.Uint64("yos_cashback_rate", rates.YosCashback))
	return sig, nil
}

// AddCentralLiquidity moves accumulated central-wallet funds into the pool
// (opcode 11). Admin only.
func (c *Client) AddCentralLiquidity(ctx context.Context) (solana.Signature, error) {
	ix, err := BuildAddCentralLiquidityInstruction(c.config, c.wallet.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.submitWithRetry(ctx, []solana.Instruction{ix})
	if err != nil {
		return sig, err
	}
	c.logger.Info("Central liquidity added to pool", zap.String("signature", sig.String()))
	return sig, nil
}

// ensureLiquidityAccount is the two-phase guard shared by every operation
// that writes the contribution account.
func (c *Client) ensureLiquidityAccount(ctx context.Context) error {
	c.setPhase(PhaseNeedsAccountCheck)
	exists, err := c.LiquidityAccountExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		c.setPhase(PhaseAccountPresent)
		return nil
	}
	c.setPhase(PhaseAccountMissing)
	_, err = c.CreateLiquidityAccount(ctx)
	return err
}
