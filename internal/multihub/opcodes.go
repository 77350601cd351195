// =============================
// File: internal/multihub/opcodes.go
// =============================
package multihub

import "encoding/binary"

// Opcode is the single discriminator byte dispatched by the on-chain program.
type Opcode byte

// Authoritative opcode table, pinned to the deployed program build. Older
// deployments used conflicting tables (opcode 3 once meant UpdateParameters,
// 7 once meant WithdrawContribution); only this mapping is valid against the
// current program.
const (
	OpInitialize             Opcode = 0
	OpSwap                   Opcode = 1
	OpContribute             Opcode = 2
	OpClaimRewards           Opcode = 3
	OpBuyAndDistribute       Opcode = 4
	OpWithdrawLiquidity      Opcode = 5
	OpUpdateParameters       Opcode = 6
	OpCreateLiquidityAccount Opcode = 7
	OpSolToYotSwapImmediate  Opcode = 8
	OpYotToSolSwapImmediate  Opcode = 9
	OpSolToYotSwapLegacy     Opcode = 10
	OpAddCentralLiquidity    Opcode = 11
)

func (op Opcode) String() string {
	switch op {
	case OpInitialize:
		return "Initialize"
	case OpSwap:
		return "Swap"
	case OpContribute:
		return "Contribute"
	case OpClaimRewards:
		return "ClaimRewards"
	case OpBuyAndDistribute:
		return "BuyAndDistribute"
	case OpWithdrawLiquidity:
		return "WithdrawLiquidity"
	case OpUpdateParameters:
		return "UpdateParameters"
	case OpCreateLiquidityAccount:
		return "CreateLiquidityAccount"
	case OpSolToYotSwapImmediate:
		return "SolToYotSwapImmediate"
	case OpYotToSolSwapImmediate:
		return "YotToSolSwapImmediate"
	case OpSolToYotSwapLegacy:
		return "SolToYotSwapLegacy"
	case OpAddCentralLiquidity:
		return "AddCentralLiquidityFromWallet"
	}
	return "Unknown"
}

// encodeInstructionData produces the wire format the program dispatcher
// expects: the discriminator byte followed by each argument as a fixed-width
// 8-byte unsigned little-endian integer. The result is always 1 + 8×len(args)
// bytes. No semantic validation happens here; callers validate first and the
// program enforces business rules on-chain.
func encodeInstructionData(op Opcode, args ...uint64) []byte {
	data := make([]byte, 1, 1+8*len(args))
	data[0] = byte(op)
	for _, arg := range args {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], arg)
		data = append(data, buf[:]...)
	}
	return data
}

// LamportsPerSol is the smallest-unit scale for SOL amounts.
const LamportsPerSol = 1_000_000_000

// SolToLamports converts a UI amount to raw lamports. Inputs are expected to
// come from operator flags, so sub-lamport precision is truncated.
func SolToLamports(sol float64) uint64 {
	return uint64(sol * LamportsPerSol)
}
