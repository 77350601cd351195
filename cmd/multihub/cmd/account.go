// ====================================
// File: cmd/multihub/cmd/account.go
// ====================================
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

var createAccountCmd = &cobra.Command{
	Use:   "create-account",
	Short: "Create the wallet's liquidity contribution account",
	Long: `Submits the dedicated account-creation instruction and waits for
confirmation. Running it when the account already exists is harmless: the
program treats a repeat creation as a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.CreateLiquidityAccount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("liquidity contribution account ready: %s\n", sig)
		return nil
	},
}

var contributionCmd = &cobra.Command{
	Use:   "contribution",
	Short: "Show the wallet's liquidity contribution account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		contrib, err := app.client.FetchLiquidityContribution(ctx, app.client.User())
		if err != nil {
			return err
		}

		fmt.Printf("user:               %s\n", contrib.User)
		fmt.Printf("contributed:        %d\n", contrib.ContributedAmount)
		fmt.Printf("started:            %s\n", time.Unix(contrib.StartTimestamp, 0).UTC().Format(time.RFC3339))
		fmt.Printf("last claim:         %s\n", time.Unix(contrib.LastClaimTime, 0).UTC().Format(time.RFC3339))
		fmt.Printf("total claimed YOS:  %d\n", contrib.TotalClaimedYos)
		return nil
	},
}

var contributeAmount float64

var contributeCmd = &cobra.Command{
	Use:   "contribute",
	Short: "Deposit YOT into the liquidity pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		if contributeAmount <= 0 {
			return fmt.Errorf("amount must be positive")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.Contribute(ctx, multihub.SolToLamports(contributeAmount))
		if err != nil {
			return err
		}
		fmt.Printf("contribution confirmed: %s\n", sig)
		return nil
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim accrued YOS rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.ClaimRewards(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("rewards claimed: %s\n", sig)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw the full liquidity contribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.WithdrawLiquidity(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("liquidity withdrawn: %s\n", sig)
		return nil
	},
}

func init() {
	contributeCmd.Flags().Float64Var(&contributeAmount, "amount", 0, "YOT amount in whole tokens")
	_ = contributeCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(createAccountCmd, contributionCmd, contributeCmd, claimCmd, withdrawCmd)
}
