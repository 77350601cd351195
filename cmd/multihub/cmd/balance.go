// ====================================
// File: cmd/multihub/cmd/balance.go
// ====================================
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show SOL, YOT and YOS balances of the signing wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		lamports, err := app.client.SolBalance(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("wallet: %s\n", app.wallet)
		fmt.Printf("SOL:    %.9f\n", float64(lamports)/multihub.LamportsPerSol)

		cfg := app.client.Config()
		for _, token := range []struct {
			name string
			mint solana.PublicKey
		}{
			{"YOT", cfg.YotMint},
			{"YOS", cfg.YosMint},
		} {
			ata, err := app.wallet.GetATA(token.mint)
			if err != nil {
				return fmt.Errorf("derive %s token account: %w", token.name, err)
			}
			result, err := app.rpc.GetTokenAccountBalance(ctx, ata)
			if err != nil || result == nil || result.Value == nil {
				fmt.Printf("%s:    no token account (%s)\n", token.name, ata)
				continue
			}
			fmt.Printf("%s:    %s\n", token.name, result.Value.UiAmountString)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
