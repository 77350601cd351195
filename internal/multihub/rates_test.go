// =============================
// File: internal/multihub/rates_test.go
// =============================
package multihub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatesValidate(t *testing.T) {
	tests := []struct {
		name    string
		rates   Rates
		wantErr bool
	}{
		{
			name:  "deployment defaults",
			rates: Rates{LpContribution: 20, YosCashback: 5, SwapFee: 1},
		},
		{
			name:  "combined exactly at cap",
			rates: Rates{LpContribution: 50, YosCashback: 30, AdminFee: 10, SwapFee: 5},
		},
		{
			name:    "combined above cap",
			rates:   Rates{LpContribution: 90, YosCashback: 10},
			wantErr: true,
		},
		{
			name:    "single rate above 100",
			rates:   Rates{LpContribution: 101},
			wantErr: true,
		},
		{
			name:  "all zero",
			rates: Rates{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rates.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRatesCombined(t *testing.T) {
	r := Rates{LpContribution: 20, YosCashback: 5, AdminFee: 3, SwapFee: 1, Referral: 2}
	assert.Equal(t, uint64(31), r.Combined())
}
