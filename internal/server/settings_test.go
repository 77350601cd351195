// =============================
// File: internal/server/settings_test.go
// =============================
package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func TestSettingsStoreDefaults(t *testing.T) {
	store := NewSettingsStore()
	settings := store.Get()

	assert.Equal(t, uint64(multihub.DefaultLiquidityThreshold), settings.LiquidityThreshold)
	assert.Equal(t, uint64(20), settings.Rates.LpContribution)
	assert.Equal(t, uint64(5), settings.Rates.YosCashback)
	assert.Equal(t, uint64(1), settings.Rates.SwapFee)
}

func TestSettingsStoreUpdate(t *testing.T) {
	store := NewSettingsStore()

	updated, err := store.Update(SettingsPatch{LiquidityThreshold: uint64Ptr(500_000_000)})
	require.NoError(t, err)
	assert.Equal(t, uint64(500_000_000), updated.LiquidityThreshold)
	// Untouched fields survive a partial patch.
	assert.Equal(t, uint64(20), updated.Rates.LpContribution)

	newRates := multihub.Rates{LpContribution: 30, YosCashback: 10}
	updated, err = store.Update(SettingsPatch{Rates: &newRates})
	require.NoError(t, err)
	assert.Equal(t, newRates, updated.Rates)
	assert.Equal(t, uint64(500_000_000), updated.LiquidityThreshold)
}

func TestSettingsStoreRejectsInvalidPatch(t *testing.T) {
	store := NewSettingsStore()
	before := store.Get()

	_, err := store.Update(SettingsPatch{LiquidityThreshold: uint64Ptr(0)})
	require.Error(t, err)
	assert.True(t, multihub.IsValidationError(err))

	badRates := multihub.Rates{LpContribution: 90, YosCashback: 10}
	_, err = store.Update(SettingsPatch{Rates: &badRates})
	require.Error(t, err)
	assert.True(t, multihub.IsValidationError(err))

	// Failed updates must not leave partial state behind.
	after := store.Get()
	assert.Equal(t, before.LiquidityThreshold, after.LiquidityThreshold)
	assert.Equal(t, before.Rates, after.Rates)
}
