// =============================
// File: internal/multihub/state.go
// =============================
package multihub

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ProgramState mirrors the on-chain state account. The client only ever
// reads it; every mutation goes through admin instructions.
type ProgramState struct {
	Admin              solana.PublicKey
	YotMint            solana.PublicKey
	YosMint            solana.PublicKey
	Rates              Rates
	LiquidityWallet    solana.PublicKey
	LiquidityThreshold uint64
}

const (
	// programStateLen is the current account size: 4 pubkeys + 6 u64.
	programStateLen = 32*4 + 8*6
	// programStateLenV1 is the pre-threshold layout: 3 pubkeys + 5 u64.
	programStateLenV1 = 32*3 + 8*5

	// DefaultLiquidityThreshold is applied when decoding the old layout:
	// 0.1 SOL in lamports, matching the program's own fallback.
	DefaultLiquidityThreshold = 100_000_000
)

// UnpackProgramState decodes the state account. Accounts written by the
// previous deployment are 40 bytes shorter; those decode with a zero
// liquidity wallet and the default threshold, same as the program does.
func UnpackProgramState(data []byte) (*ProgramState, error) {
	if len(data) < programStateLenV1 {
		return nil, fmt.Errorf("program state data too short: %d bytes", len(data))
	}

	s := &ProgramState{}
	s.Admin = solana.PublicKeyFromBytes(data[0:32])
	s.YotMint = solana.PublicKeyFromBytes(data[32:64])
	s.YosMint = solana.PublicKeyFromBytes(data[64:96])
	s.Rates = Rates{
		LpContribution: binary.LittleEndian.Uint64(data[96:104]),
		AdminFee:       binary.LittleEndian.Uint64(data[104:112]),
		YosCashback:    binary.LittleEndian.Uint64(data[112:120]),
		SwapFee:        binary.LittleEndian.Uint64(data[120:128]),
		Referral:       binary.LittleEndian.Uint64(data[128:136]),
	}

	if len(data) < programStateLen {
		s.LiquidityThreshold = DefaultLiquidityThreshold
		return s, nil
	}
	s.LiquidityWallet = solana.PublicKeyFromBytes(data[136:168])
	s.LiquidityThreshold = binary.LittleEndian.Uint64(data[168:176])
	return s, nil
}

// LiquidityContribution mirrors the per-user contribution account created by
// opcode 7 (or lazily by the first swap).
type LiquidityContribution struct {
	User              solana.PublicKey
	ContributedAmount uint64
	StartTimestamp    int64
	LastClaimTime     int64
	TotalClaimedYos   uint64
}

// liquidityContributionLen is pubkey + u64 + i64 + i64 + u64.
const liquidityContributionLen = 32 + 8 + 8 + 8 + 8

// UnpackLiquidityContribution decodes a liquidity contribution account.
func UnpackLiquidityContribution(data []byte) (*LiquidityContribution, error) {
	if len(data) < liquidityContributionLen {
		return nil, fmt.Errorf("liquidity contribution data too short: %d bytes", len(data))
	}
	return &LiquidityContribution{
		User:              solana.PublicKeyFromBytes(data[0:32]),
		ContributedAmount: binary.LittleEndian.Uint64(data[32:40]),
		StartTimestamp:    int64(binary.LittleEndian.Uint64(data[40:48])),
		LastClaimTime:     int64(binary.LittleEndian.Uint64(data[48:56])),
		TotalClaimedYos:   binary.LittleEndian.Uint64(data[56:64]),
	}, nil
}
