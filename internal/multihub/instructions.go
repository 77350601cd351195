// =============================
// File: internal/multihub/instructions.go
// =============================
package multihub

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Every builder below derives the PDAs and associated token accounts it needs
// fresh from the injected Config, then assembles the account list in the
// exact order the program's account validation walks it. Order and
// writability flags are part of the wire contract: a deviation either fails
// account validation outright or, worse, silently hands the wrong account to
// the wrong role.

// BuildInitializeInstruction encodes opcode 0. Admin-only; the payload is the
// raw bytes of the two token mints, not u64 arguments.
func BuildInitializeInstruction(cfg *Config, admin solana.PublicKey) (solana.Instruction, error) {
	statePDA, _, err := DeriveProgramState(cfg.ProgramID)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 1+64)
	data = append(data, byte(OpInitialize))
	data = append(data, cfg.YotMint.Bytes()...)
	data = append(data, cfg.YosMint.Bytes()...)

	accounts := []*solana.AccountMeta{
		{PublicKey: admin, IsSigner: true, IsWritable: true},
		{PublicKey: statePDA, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.CentralLiquidityWallet, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, data), nil
}

// BuildCreateLiquidityAccountInstruction encodes opcode 7, the first leg of
// the two-phase swap. It only allocates the per-user liquidity contribution
// PDA so the following swap transaction never has to create and borrow the
// account in one go.
func BuildCreateLiquidityAccountInstruction(cfg *Config, user solana.PublicKey) (solana.Instruction, error) {
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, user)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpCreateLiquidityAccount)), nil
}

// swapAccounts assembles the account list shared by the immediate swap
// opcodes (8 and 9). The program walks the same thirteen accounts for both
// directions.
func (c *Config) swapAccounts(user solana.PublicKey) ([]*solana.AccountMeta, error) {
	statePDA, _, err := DeriveProgramState(c.ProgramID)
	if err != nil {
		return nil, err
	}
	authorityPDA, _, err := DeriveProgramAuthority(c.ProgramID)
	if err != nil {
		return nil, err
	}
	liqPDA, _, err := DeriveLiquidityContribution(c.ProgramID, user)
	if err != nil {
		return nil, err
	}
	userYot, _, err := solana.FindAssociatedTokenAddress(user, c.YotMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOT account: %w", err)
	}
	userYos, _, err := solana.FindAssociatedTokenAddress(user, c.YosMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOS account: %w", err)
	}

	return []*solana.AccountMeta{
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: statePDA, IsSigner: false, IsWritable: false},
		{PublicKey: authorityPDA, IsSigner: false, IsWritable: false},
		{PublicKey: c.SolPool, IsSigner: false, IsWritable: true},
		{PublicKey: c.YotPool, IsSigner: false, IsWritable: true},
		{PublicKey: userYot, IsSigner: false, IsWritable: true},
		{PublicKey: c.CentralLiquidityWallet, IsSigner: false, IsWritable: true},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: c.YosMint, IsSigner: false, IsWritable: true},
		{PublicKey: userYos, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
	}, nil
}

// BuildSolToYotSwapInstruction encodes opcode 8, the immediate-settlement
// SOL -> YOT swap. amountIn is raw lamports, minAmountOut raw YOT units.
func BuildSolToYotSwapInstruction(cfg *Config, user solana.PublicKey, amountIn, minAmountOut uint64) (solana.Instruction, error) {
	accounts, err := cfg.swapAccounts(user)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(cfg.ProgramID, accounts,
		encodeInstructionData(OpSolToYotSwapImmediate, amountIn, minAmountOut)), nil
}

// BuildYotToSolSwapInstruction encodes opcode 9, the immediate-settlement
// YOT -> SOL swap.
func BuildYotToSolSwapInstruction(cfg *Config, user solana.PublicKey, amountIn, minAmountOut uint64) (solana.Instruction, error) {
	accounts, err := cfg.swapAccounts(user)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(cfg.ProgramID, accounts,
		encodeInstructionData(OpYotToSolSwapImmediate, amountIn, minAmountOut)), nil
}

// BuildLegacySolToYotSwapInstruction encodes opcode 10, the pre-immediate
// variant still dispatched by the deployed program. The account list matches
// opcode 8 minus the central liquidity wallet.
func BuildLegacySolToYotSwapInstruction(cfg *Config, user solana.PublicKey, amountIn, minAmountOut uint64) (solana.Instruction, error) {
	accounts, err := cfg.swapAccounts(user)
	if err != nil {
		return nil, err
	}
	// Same walk order, without the central liquidity wallet at index 6.
	accounts = append(accounts[:6], accounts[7:]...)
	return solana.NewInstruction(cfg.ProgramID, accounts,
		encodeInstructionData(OpSolToYotSwapLegacy, amountIn, minAmountOut)), nil
}

// BuildClaimRewardsInstruction encodes opcode 3. caller pays the fee and may
// differ from the user whose contribution account accrues the rewards.
func BuildClaimRewardsInstruction(cfg *Config, caller, user solana.PublicKey) (solana.Instruction, error) {
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, user)
	if err != nil {
		return nil, err
	}
	userYos, _, err := solana.FindAssociatedTokenAddress(user, cfg.YosMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOS account: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: caller, IsSigner: true, IsWritable: true},
		{PublicKey: user, IsSigner: false, IsWritable: false},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.YosMint, IsSigner: false, IsWritable: true},
		{PublicKey: userYos, IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpClaimRewards)), nil
}

// BuildWithdrawLiquidityInstruction encodes opcode 5, returning the user's
// full contribution from the YOT vault.
func BuildWithdrawLiquidityInstruction(cfg *Config, user solana.PublicKey) (solana.Instruction, error) {
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, user)
	if err != nil {
		return nil, err
	}
	userYot, _, err := solana.FindAssociatedTokenAddress(user, cfg.YotMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOT account: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.YotPool, IsSigner: false, IsWritable: true},
		{PublicKey: userYot, IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpWithdrawLiquidity)), nil
}

// BuildContributeInstruction encodes opcode 2, a direct deposit into the
// liquidity pool outside of a swap.
func BuildContributeInstruction(cfg *Config, user solana.PublicKey, amount uint64) (solana.Instruction, error) {
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, user)
	if err != nil {
		return nil, err
	}
	userYot, _, err := solana.FindAssociatedTokenAddress(user, cfg.YotMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOT account: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: userYot, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.YotPool, IsSigner: false, IsWritable: true},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpContribute, amount)), nil
}

// BuildBuyAndDistributeInstruction encodes opcode 4. The program splits the
// amount 75/20/5 between the user, the liquidity pool and YOS cashback.
func BuildBuyAndDistributeInstruction(cfg *Config, user solana.PublicKey, amount uint64) (solana.Instruction, error) {
	statePDA, _, err := DeriveProgramState(cfg.ProgramID)
	if err != nil {
		return nil, err
	}
	authorityPDA, _, err := DeriveProgramAuthority(cfg.ProgramID)
	if err != nil {
		return nil, err
	}
	liqPDA, _, err := DeriveLiquidityContribution(cfg.ProgramID, user)
	if err != nil {
		return nil, err
	}
	userYot, _, err := solana.FindAssociatedTokenAddress(user, cfg.YotMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOT account: %w", err)
	}
	userYos, _, err := solana.FindAssociatedTokenAddress(user, cfg.YosMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user YOS account: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: cfg.YotPool, IsSigner: false, IsWritable: true},
		{PublicKey: userYot, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.CentralLiquidityWallet, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.YosMint, IsSigner: false, IsWritable: true},
		{PublicKey: userYos, IsSigner: false, IsWritable: true},
		{PublicKey: liqPDA, IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		{PublicKey: statePDA, IsSigner: false, IsWritable: false},
		{PublicKey: authorityPDA, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpBuyAndDistribute, amount)), nil
}

// BuildUpdateParametersInstruction encodes opcode 6. Rates are whole percent
// values; ValidateRates must pass before this is called.
func BuildUpdateParametersInstruction(cfg *Config, admin solana.PublicKey, rates Rates) (solana.Instruction, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	statePDA, _, err := DeriveProgramState(cfg.ProgramID)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: admin, IsSigner: true, IsWritable: false},
		{PublicKey: statePDA, IsSigner: false, IsWritable: true},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts,
		encodeInstructionData(OpUpdateParameters,
			rates.LpContribution, rates.YosCashback, rates.AdminFee, rates.SwapFee, rates.Referral)), nil
}

// BuildAddCentralLiquidityInstruction encodes opcode 11, the admin operation
// moving accumulated SOL/YOT from the central wallet into the pool.
func BuildAddCentralLiquidityInstruction(cfg *Config, admin solana.PublicKey) (solana.Instruction, error) {
	if cfg.CentralYotAccount.IsZero() || cfg.LpMint.IsZero() {
		return nil, &ValidationError{Field: "central yot account / lp mint", Reason: "must be set for add-liquidity"}
	}
	statePDA, _, err := DeriveProgramState(cfg.ProgramID)
	if err != nil {
		return nil, err
	}
	authorityPDA, _, err := DeriveProgramAuthority(cfg.ProgramID)
	if err != nil {
		return nil, err
	}
	adminLp, _, err := solana.FindAssociatedTokenAddress(admin, cfg.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive admin LP account: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: admin, IsSigner: true, IsWritable: true},
		{PublicKey: statePDA, IsSigner: false, IsWritable: false},
		{PublicKey: authorityPDA, IsSigner: false, IsWritable: false},
		{PublicKey: cfg.SolPool, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.YotPool, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.CentralLiquidityWallet, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.CentralYotAccount, IsSigner: false, IsWritable: true},
		{PublicKey: cfg.LpMint, IsSigner: false, IsWritable: true},
		{PublicKey: adminLp, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
	}
	return solana.NewInstruction(cfg.ProgramID, accounts, encodeInstructionData(OpAddCentralLiquidity)), nil
}
