// =============================
// File: internal/multihub/config.go
// =============================
package multihub

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Config carries every address the instruction builders need. Nothing is
// hardcoded in the builders themselves: one injected Config replaces the
// per-script constants the old debug tooling scattered around.
type Config struct {
	// ProgramID is the deployed Multi-Hub Swap program.
	ProgramID solana.PublicKey

	// YotMint and YosMint are the two token mints the program trades.
	YotMint solana.PublicKey
	YosMint solana.PublicKey

	// SolPool and YotPool are the pooled accounts the program swaps against.
	SolPool solana.PublicKey
	YotPool solana.PublicKey

	// CentralLiquidityWallet accumulates the liquidity portion of each swap
	// until the program-side threshold triggers an LP add.
	CentralLiquidityWallet solana.PublicKey

	// CentralYotAccount and LpMint are only needed for the admin
	// add-liquidity operation.
	CentralYotAccount solana.PublicKey
	LpMint            solana.PublicKey
}

// Validate checks that every account required for swap operations is set.
// Admin-only fields (CentralYotAccount, LpMint) are checked at the call site
// of the operations that need them.
func (c *Config) Validate() error {
	required := []struct {
		name string
		key  solana.PublicKey
	}{
		{"program id", c.ProgramID},
		{"yot mint", c.YotMint},
		{"yos mint", c.YosMint},
		{"sol pool", c.SolPool},
		{"yot pool", c.YotPool},
		{"central liquidity wallet", c.CentralLiquidityWallet},
	}
	for _, r := range required {
		if r.key.IsZero() {
			return &ValidationError{Field: r.name, Reason: "must be set"}
		}
	}
	return nil
}

// ParseConfig builds a Config from base58 strings, typically coming straight
// from the application config file.
func ParseConfig(programID, yotMint, yosMint, solPool, yotPool, centralWallet string) (*Config, error) {
	cfg := &Config{}
	for _, f := range []struct {
		name string
		raw  string
		dst  *solana.PublicKey
	}{
		{"program id", programID, &cfg.ProgramID},
		{"yot mint", yotMint, &cfg.YotMint},
		{"yos mint", yosMint, &cfg.YosMint},
		{"sol pool", solPool, &cfg.SolPool},
		{"yot pool", yotPool, &cfg.YotPool},
		{"central liquidity wallet", centralWallet, &cfg.CentralLiquidityWallet},
	} {
		key, err := solana.PublicKeyFromBase58(f.raw)
		if err != nil {
			return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("invalid base58 address %q", f.raw)}
		}
		*f.dst = key
	}
	return cfg, cfg.Validate()
}
