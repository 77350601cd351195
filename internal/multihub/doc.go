// =============================
// File: internal/multihub/doc.go
// =============================

// Package multihub is the client for the deployed Multi-Hub Swap program.
//
// The on-chain program owns all durable logic: the AMM curve, the fee split
// (75% user / 20% liquidity / 5% YOS cashback), and reward accrual. This
// package only speaks its calling convention:
//
//   - PDA resolution for the program state ("state"), the program authority
//     ("authority") and the per-user liquidity contribution ("liq" + pubkey);
//   - instruction encoding: a single discriminator byte followed by
//     fixed-width little-endian u64 arguments;
//   - account-meta lists in the exact order the program's account validation
//     expects;
//   - the client-orchestrated two-phase sequence that creates the liquidity
//     contribution account in its own confirmed transaction before any swap
//     that depends on it.
//
// The opcode table is version-pinned to the deployed program build. Earlier
// deployments used conflicting tables, so the constants in opcodes.go are
// the only authoritative mapping; do not infer opcodes from old scripts.
package multihub
