// =============================
// File: internal/server/types.go
// =============================
package server

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// ProgramStateResponse is the decoded on-chain state for the dashboard.
type ProgramStateResponse struct {
	Admin              string `json:"admin"`
	YotMint            string `json:"yot_mint"`
	YosMint            string `json:"yos_mint"`
	LpContributionRate uint64 `json:"lp_contribution_rate"`
	YosCashbackRate    uint64 `json:"yos_cashback_rate"`
	AdminFeeRate       uint64 `json:"admin_fee_rate"`
	SwapFeeRate        uint64 `json:"swap_fee_rate"`
	ReferralRate       uint64 `json:"referral_rate"`
	LiquidityWallet    string `json:"liquidity_wallet"`
	LiquidityThreshold uint64 `json:"liquidity_threshold"`
}
