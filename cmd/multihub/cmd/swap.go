// ====================================
// File: cmd/multihub/cmd/swap.go
// ====================================
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

var (
	swapDirection string
	swapAmount    float64
	swapMinOut    uint64
	swapDryRun    bool
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Execute a swap against the Multi-Hub Swap program",
	Long: `Executes a SOL<->YOT swap with immediate settlement. If the signing
wallet has no liquidity contribution account yet, it is created and confirmed
in a separate transaction before the swap is submitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(true)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		var direction multihub.SwapDirection
		switch swapDirection {
		case "sol-to-yot":
			direction = multihub.SolToYot
		case "yot-to-sol":
			direction = multihub.YotToSol
		default:
			return fmt.Errorf("unknown direction %q (want sol-to-yot or yot-to-sol)", swapDirection)
		}
		if swapAmount <= 0 {
			return fmt.Errorf("amount must be positive")
		}

		app.client.OnPhase(func(p multihub.SwapPhase) {
			fmt.Printf("phase: %s\n", p)
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		// Both SOL and YOT use 9 decimals, so one conversion covers both sides.
		params := multihub.SwapParams{
			Direction:    direction,
			AmountIn:     multihub.SolToLamports(swapAmount),
			MinAmountOut: swapMinOut,
		}

		opLog := app.log.WithOperation("swap")
		opLog.Info("Swap requested",
			zap.String("direction", swapDirection),
			zap.Uint64("amount_in", params.AmountIn),
			zap.Uint64("min_amount_out", params.MinAmountOut),
			zap.Bool("dry_run", swapDryRun))

		if swapDryRun {
			result, err := app.client.SimulateSwap(ctx, params)
			if err != nil {
				app.log.LogError("Swap simulation failed", err, zap.String("direction", swapDirection))
				return err
			}
			for _, line := range result.Logs {
				fmt.Println(line)
			}
			if result.Err != nil {
				return fmt.Errorf("simulation failed: %v", result.Err)
			}
			fmt.Printf("simulation ok, compute units: %d\n", result.UnitsConsumed)
			return nil
		}

		sig, err := app.client.ExecuteSwap(ctx, params)
		if err != nil {
			app.log.LogError("Swap failed", err, zap.String("direction", swapDirection))
			return err
		}
		app.log.WithTransaction(sig.String()).Info("Swap confirmed",
			zap.String("direction", swapDirection))
		fmt.Printf("swap confirmed: %s\n", sig)
		return nil
	},
}

func init() {
	swapCmd.Flags().StringVar(&swapDirection, "direction", "sol-to-yot", "swap direction: sol-to-yot or yot-to-sol")
	swapCmd.Flags().Float64Var(&swapAmount, "amount", 0, "input amount in whole tokens (SOL or YOT)")
	swapCmd.Flags().Uint64Var(&swapMinOut, "min-out", 0, "minimum output in smallest units (0 disables the check)")
	swapCmd.Flags().BoolVar(&swapDryRun, "dry-run", false, "simulate the swap without submitting it")
	_ = swapCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(swapCmd)
}
