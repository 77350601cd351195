// =============================
// File: internal/server/settings.go
// =============================
package server

import (
	"sync"
	"time"

	"github.com/rovshanmuradov/multihub-swap/internal/multihub"
)

// Settings is the admin-tunable configuration exposed over REST. The
// liquidity threshold mirrors the on-chain value the dashboard displays; the
// rates are staged here until the operator submits an update-parameters
// transaction.
type Settings struct {
	LiquidityThreshold uint64         `json:"liquidity_threshold"`
	Rates              multihub.Rates `json:"rates"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// SettingsStore is an in-memory settings holder. Persistence is out of
// scope; the store exists to give the PATCH endpoint validated,
// race-free state.
type SettingsStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewSettingsStore seeds the store with the program's deployment defaults.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: Settings{
			LiquidityThreshold: multihub.DefaultLiquidityThreshold,
			Rates: multihub.Rates{
				LpContribution: 20,
				YosCashback:    5,
				AdminFee:       0,
				SwapFee:        1,
				Referral:       0,
			},
			UpdatedAt: time.Now().UTC(),
		},
	}
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies a validated patch. Nil fields in the patch leave the
// current value untouched.
func (s *SettingsStore) Update(patch SettingsPatch) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	if patch.LiquidityThreshold != nil {
		if *patch.LiquidityThreshold == 0 {
			return Settings{}, &multihub.ValidationError{Field: "liquidity_threshold", Reason: "must be positive"}
		}
		next.LiquidityThreshold = *patch.LiquidityThreshold
	}
	if patch.Rates != nil {
		if err := patch.Rates.Validate(); err != nil {
			return Settings{}, err
		}
		next.Rates = *patch.Rates
	}
	next.UpdatedAt = time.Now().UTC()
	s.settings = next
	return next, nil
}

// SettingsPatch is the PATCH request body; omitted fields stay unchanged.
type SettingsPatch struct {
	LiquidityThreshold *uint64         `json:"liquidity_threshold,omitempty"`
	Rates              *multihub.Rates `json:"rates,omitempty"`
}
