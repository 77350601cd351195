// ====================================
// File: cmd/multihub/cmd/admin.go
// ====================================
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the program state account (admin)",
	Long: `Creates the global state account with the configured mints and the
central liquidity wallet. Fails on-chain when the state already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.Initialize(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("program state initialized: %s\n", sig)
		return nil
	},
}

var updateRates multihub.Rates

var updateParamsCmd = &cobra.Command{
	Use:   "update-params",
	Short: "Update the program rate parameters (admin)",
	Long: `Submits new distribution and fee rates. Each rate is a whole percent;
the combined total must stay at or below 95 so a swap can never consume more
than its input. Rates are validated locally before anything is sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := updateRates.Validate(); err != nil {
			return err
		}

		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.UpdateParameters(ctx, updateRates)
		if err != nil {
			return err
		}
		fmt.Printf("parameters updated: %s\n", sig)
		return nil
	},
}

var addLiquidityCmd = &cobra.Command{
	Use:   "add-liquidity",
	Short: "Move accumulated central-wallet funds into the pool (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		sig, err := app.client.AddCentralLiquidity(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("central liquidity added: %s\n", sig)
		return nil
	},
}

func init() {
	updateParamsCmd.Flags().Uint64Var(&updateRates.LpContribution, "lp-rate", 20, "liquidity contribution rate, percent")
	updateParamsCmd.Flags().Uint64Var(&updateRates.YosCashback, "cashback-rate", 5, "YOS cashback rate, percent")
	updateParamsCmd.Flags().Uint64Var(&updateRates.AdminFee, "admin-fee-rate", 0, "admin fee rate, percent")
	updateParamsCmd.Flags().Uint64Var(&updateRates.SwapFee, "swap-fee-rate", 1, "swap fee rate, percent")
	updateParamsCmd.Flags().Uint64Var(&updateRates.Referral, "referral-rate", 0, "referral rate, percent")

	rootCmd.AddCommand(initCmd, updateParamsCmd, addLiquidityCmd)
}
