// =============================
// File: internal/multihub/types.go
// =============================
package multihub

// SwapDirection selects which immediate swap opcode is submitted.
type SwapDirection int

const (
	SolToYot SwapDirection = iota
	YotToSol
)

func (d SwapDirection) String() string {
	if d == YotToSol {
		return "yot-to-sol"
	}
	return "sol-to-yot"
}

// SwapParams is the ephemeral request handed to ExecuteSwap. Amounts are in
// smallest units (lamports / raw token units); the caller converts from UI
// amounts before this point.
type SwapParams struct {
	Direction    SwapDirection
	AmountIn     uint64
	MinAmountOut uint64
}

// Validate runs the local checks that must reject a request before any
// network call is made.
func (p SwapParams) Validate() error {
	if p.AmountIn == 0 {
		return &ValidationError{Field: "amount_in", Reason: "must be positive"}
	}
	if p.Direction != SolToYot && p.Direction != YotToSol {
		return &ValidationError{Field: "direction", Reason: "unknown swap direction"}
	}
	return nil
}

// SwapPhase tracks the client-orchestrated two-phase protocol. The only legal
// paths are
//
//	NeedsAccountCheck -> AccountPresent -> SwapSubmitted -> SwapConfirmed
//	NeedsAccountCheck -> AccountMissing -> AccountCreationSubmitted ->
//	    AccountCreationConfirmed -> SwapSubmitted -> SwapConfirmed
//
// Submitting the swap from AccountMissing is what produces the program's
// "account already borrowed" failure.
type SwapPhase int

const (
	PhaseNeedsAccountCheck SwapPhase = iota
	PhaseAccountMissing
	PhaseAccountCreationSubmitted
	PhaseAccountCreationConfirmed
	PhaseAccountPresent
	PhaseSwapSubmitted
	PhaseSwapConfirmed
)

func (p SwapPhase) String() string {
	switch p {
	case PhaseNeedsAccountCheck:
		return "NeedsAccountCheck"
	case PhaseAccountMissing:
		return "AccountMissing"
	case PhaseAccountCreationSubmitted:
		return "AccountCreationSubmitted"
	case PhaseAccountCreationConfirmed:
		return "AccountCreationConfirmed"
	case PhaseAccountPresent:
		return "AccountPresent"
	case PhaseSwapSubmitted:
		return "SwapSubmitted"
	case PhaseSwapConfirmed:
		return "SwapConfirmed"
	}
	return "Unknown"
}
