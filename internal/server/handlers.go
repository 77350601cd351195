// =============================
// File: internal/server/handlers.go
// =============================
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

// StateReader is the slice of the protocol client the handlers need.
type StateReader interface {
	FetchProgramState(ctx context.Context) (*multihub.ProgramState, error)
}

// Handlers contains all dependencies for the admin endpoints.
type Handlers struct {
	Settings *SettingsStore
	State    StateReader // nil when the server runs without an RPC connection
	Logger   *zap.Logger
}

func (h *Handlers) err(c echo.Context, code int, msg string) error {
	return c.JSON(code, ErrorResponse{Error: msg, Code: code})
}

// Health is a liveness probe.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// GetSettings returns the current admin settings.
func (h *Handlers) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Settings.Get())
}

// PatchSettings applies a partial settings update. Invalid rates (combined
// above the cap) and non-positive thresholds are rejected with 400 before
// anything is stored or submitted.
func (h *Handlers) PatchSettings(c echo.Context) error {
	var patch SettingsPatch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json")
	}

	updated, err := h.Settings.Update(patch)
	if err != nil {
		if multihub.IsValidationError(err) {
			return h.err(c, http.StatusBadRequest, err.Error())
		}
		h.Logger.Error("Settings update failed", zap.Error(err))
		return h.err(c, http.StatusInternalServerError, "settings update failed")
	}

	h.Logger.Info("Admin settings updated",
		zap.Uint64("liquidity_threshold", updated.LiquidityThreshold),
		zap.Uint64("combined_rate", updated.Rates.Combined()))
	return c.JSON(http.StatusOK, updated)
}

// GetProgramState reads and decodes the on-chain state account.
func (h *Handlers) GetProgramState(c echo.Context) error {
	if h.State == nil {
		return h.err(c, http.StatusServiceUnavailable, "no rpc connection configured")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	state, err := h.State.FetchProgramState(ctx)
	if err != nil {
		h.Logger.Error("Failed to fetch program state", zap.Error(err))
		return h.err(c, http.StatusBadGateway, "failed to fetch program state")
	}

	return c.JSON(http.StatusOK, ProgramStateResponse{
		Admin:              state.Admin.String(),
		YotMint:            state.YotMint.String(),
		YosMint:            state.YosMint.String(),
		LpContributionRate: state.Rates.LpContribution,
		YosCashbackRate:    state.Rates.YosCashback,
		AdminFeeRate:       state.Rates.AdminFee,
		SwapFeeRate:        state.Rates.SwapFee,
		ReferralRate:       state.Rates.Referral,
		LiquidityWallet:    state.LiquidityWallet.String(),
		LiquidityThreshold: state.LiquidityThreshold,
	})
}
