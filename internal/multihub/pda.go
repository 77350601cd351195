// =============================
// File: internal/multihub/pda.go
// =============================
package multihub

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Seed literals used by the on-chain program. These must stay byte-identical
// to the program source; a mismatch only surfaces at submission time as an
// invalid-account error, never at derivation time.
const (
	stateSeed     = "state"
	authoritySeed = "authority"
	liquiditySeed = "liq"
)

// DeriveProgramState returns the PDA holding the global swap parameters
// (admin key, rate fields, liquidity wallet and threshold).
func DeriveProgramState(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(stateSeed)},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program state: %w", err)
	}
	return addr, bump, nil
}

// DeriveProgramAuthority returns the PDA the program signs with when it moves
// pooled tokens. The client never writes to it directly.
func DeriveProgramAuthority(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(authoritySeed)},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program authority: %w", err)
	}
	return addr, bump, nil
}

// DeriveLiquidityContribution returns the per-user PDA tracking accumulated
// pool contributions. It is cheap and deterministic, so callers recompute it
// before every transaction instead of caching it across sessions.
func DeriveLiquidityContribution(programID, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(liquiditySeed), user.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive liquidity contribution for %s: %w", user.String(), err)
	}
	return addr, bump, nil
}
