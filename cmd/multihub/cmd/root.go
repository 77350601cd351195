// ====================================
// File: cmd/multihub/cmd/root.go
// ====================================
package cmd

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/multihub-swap/internal/blockchain/solbc"
	"github.com/rovshanmuradov/multihub-swap/internal/config"
	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
	"github.com/rovshanmuradov/multihub-swap/internal/utils/logger"
	"github.com/rovshanmuradov/multihub-swap/internal/wallet"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "multihub",
	Short: "Client for the Multi-Hub Swap on-chain program",
	Long: `multihub submits instructions to the deployed Multi-Hub Swap program:
swaps with immediate settlement, liquidity contribution accounts, reward
claims and the admin parameter operations. It replaces the pile of one-off
debug scripts with one configured binary.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "config file")
}

// app bundles the wired dependencies every subcommand needs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	rpc    *solbc.Client
	wallet *wallet.Wallet
	client *multihub.Client
}

// newApp loads configuration and wires the protocol client. Commands that
// never sign anything may run without a key file; they get a throwaway
// keypair so the read-only paths still work.
func newApp(needWallet bool) (*app, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Development = cfg.DebugLogging
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var w *wallet.Wallet
	switch {
	case cfg.KeyFile != "":
		w, err = wallet.LoadFromFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load wallet: %w", err)
		}
	case needWallet:
		return nil, fmt.Errorf("key_file must be configured for this command")
	default:
		pk, err := solana.NewRandomPrivateKey()
		if err != nil {
			return nil, err
		}
		w, err = wallet.NewWallet(pk.String())
		if err != nil {
			return nil, err
		}
	}

	mhCfg, err := multihub.ParseConfig(
		cfg.ProgramID, cfg.YotMint, cfg.YosMint,
		cfg.SolPool, cfg.YotPool, cfg.CentralLiquidityWallet,
	)
	if err != nil {
		return nil, err
	}
	if cfg.CentralYotAccount != "" {
		if mhCfg.CentralYotAccount, err = solana.PublicKeyFromBase58(cfg.CentralYotAccount); err != nil {
			return nil, fmt.Errorf("invalid central_yot_account: %w", err)
		}
	}
	if cfg.LpMint != "" {
		if mhCfg.LpMint, err = solana.PublicKeyFromBase58(cfg.LpMint); err != nil {
			return nil, fmt.Errorf("invalid lp_mint: %w", err)
		}
	}

	rpcClient := solbc.NewClient(cfg.RPCList, log.WithComponent("rpc"))

	policy := multihub.RetryPolicy{
		MaxAttempts:     uint(cfg.Retries),
		MaxElapsed:      time.Duration(cfg.RetryElapsedMs) * time.Millisecond,
		InitialInterval: 500 * time.Millisecond,
	}

	client, err := multihub.New(rpcClient, w, log.Logger, mhCfg, policy)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, rpc: rpcClient, wallet: w, client: client}, nil
}
