// ====================================
// File: cmd/multihub/cmd/state.go
// ====================================
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the decoded on-chain program state",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		state, err := app.client.FetchProgramState(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("admin:                 %s\n", state.Admin)
		fmt.Printf("yot mint:              %s\n", state.YotMint)
		fmt.Printf("yos mint:              %s\n", state.YosMint)
		fmt.Printf("lp contribution rate:  %d%%\n", state.Rates.LpContribution)
		fmt.Printf("yos cashback rate:     %d%%\n", state.Rates.YosCashback)
		fmt.Printf("admin fee rate:        %d%%\n", state.Rates.AdminFee)
		fmt.Printf("swap fee rate:         %d%%\n", state.Rates.SwapFee)
		fmt.Printf("referral rate:         %d%%\n", state.Rates.Referral)
		fmt.Printf("liquidity wallet:      %s\n", state.LiquidityWallet)
		fmt.Printf("liquidity threshold:   %d\n", state.LiquidityThreshold)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
