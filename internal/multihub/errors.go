// =============================
// File: internal/multihub/errors.go
// =============================
package multihub

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// The program reports failures as opaque strings in RPC responses. Instead of
// matching substrings all over the codebase, classification happens exactly
// once (ClassifySubmissionError) and everything downstream works with these
// tagged types.

// ValidationError is a local failure detected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NetworkError wraps RPC transport failures: the transaction may or may not
// have reached the cluster.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// OnChainError is a program-side simulation or execution failure. These are
// terminal: the raw code and logs are surfaced verbatim for the operator.
type OnChainError struct {
	Code int
	Logs []string
	Err  error
}

func (e *OnChainError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("on-chain error 0x%x: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("on-chain error: %v", e.Err)
}

func (e *OnChainError) Unwrap() error { return e.Err }

// ResourceConflictError is the "account already borrowed" class the program
// returns when a swap touches the liquidity contribution account in the same
// transaction that creates it. Mitigated by the two-phase sequence in swap.go
// with at most one retry.
type ResourceConflictError struct {
	Account solana.PublicKey
	Err     error
}

func (e *ResourceConflictError) Error() string {
	return fmt.Sprintf("resource conflict on %s: %v", e.Account.String(), e.Err)
}

func (e *ResourceConflictError) Unwrap() error { return e.Err }

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsResourceConflict reports whether err is the borrow-conflict class that
// the two-phase account creation protocol mitigates.
func IsResourceConflict(err error) bool {
	var rc *ResourceConflictError
	return errors.As(err, &rc)
}

// IsOnChainError reports whether err is a terminal program-side failure.
func IsOnChainError(err error) bool {
	var oc *OnChainError
	return errors.As(err, &oc)
}

// ClassifySubmissionError is the single place raw RPC error strings are
// inspected. liqAccount is the liquidity contribution PDA of the submitting
// user, attached to conflict errors for context.
func ClassifySubmissionError(err error, liqAccount solana.PublicKey) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already borrowed") ||
		strings.Contains(msg, "accountborrowfailed") ||
		strings.Contains(msg, "account in use"):
		return &ResourceConflictError{Account: liqAccount, Err: err}
	case strings.Contains(msg, "custom program error"):
		return &OnChainError{Code: parseCustomErrorCode(msg), Err: err}
	case strings.Contains(msg, "invalid instruction") ||
		strings.Contains(msg, "invalidinstructiondata") ||
		strings.Contains(msg, "instructionerror"):
		return &OnChainError{Err: err}
	default:
		return &NetworkError{Op: "send transaction", Err: err}
	}
}

// parseCustomErrorCode extracts the hex code from messages shaped like
// "custom program error: 0x1774". Returns 0 when the message carries none.
func parseCustomErrorCode(msg string) int {
	idx := strings.Index(msg, "0x")
	if idx < 0 {
		return 0
	}
	var code int
	if _, err := fmt.Sscanf(msg[idx:], "0x%x", &code); err != nil {
		return 0
	}
	return code
}
