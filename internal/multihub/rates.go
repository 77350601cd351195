// =============================
// File: internal/multihub/rates.go
// =============================
package multihub

import "fmt"

// Rates are the five program parameters, in whole percent. The deployed
// program initializes them to 20/5/0/1/0.
type Rates struct {
	LpContribution uint64 `json:"lp_contribution_rate"`
	YosCashback    uint64 `json:"yos_cashback_rate"`
	AdminFee       uint64 `json:"admin_fee_rate"`
	SwapFee        uint64 `json:"swap_fee_rate"`
	Referral       uint64 `json:"referral_rate"`
}

// MaxCombinedRate caps the sum of all rates: at least 5% of every swap must
// always reach the user, so updates beyond this are rejected client-side
// before anything is encoded or submitted.
const MaxCombinedRate = 95

// Validate rejects out-of-range rates before they reach the encoder.
func (r Rates) Validate() error {
	for _, f := range []struct {
		name  string
		value uint64
	}{
		{"lp_contribution_rate", r.LpContribution},
		{"yos_cashback_rate", r.YosCashback},
		{"admin_fee_rate", r.AdminFee},
		{"swap_fee_rate", r.SwapFee},
		{"referral_rate", r.Referral},
	} {
		if f.value > 100 {
			return &ValidationError{Field: f.name, Reason: fmt.Sprintf("%d exceeds 100%%", f.value)}
		}
	}
	if combined := r.Combined(); combined > MaxCombinedRate {
		return &ValidationError{
			Field:  "combined rate",
			Reason: fmt.Sprintf("%d%% exceeds the %d%% cap", combined, MaxCombinedRate),
		}
	}
	return nil
}

// Combined returns the total percentage taken out of a swap.
func (r Rates) Combined() uint64 {
	return r.LpContribution + r.YosCashback + r.AdminFee + r.SwapFee + r.Referral
}
