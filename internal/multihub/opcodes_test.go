// =============================
// File: internal/multihub/opcodes_test.go
// =============================
package multihub

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInstructionData(t *testing.T) {
	tests := []struct {
		name    string
		op      Opcode
		args    []uint64
		wantLen int
	}{
		{"no args", OpClaimRewards, nil, 1},
		{"one arg", OpContribute, []uint64{42}, 9},
		{"two args", OpSolToYotSwapImmediate, []uint64{1_000_000, 950_000}, 17},
		{"five args", OpUpdateParameters, []uint64{20, 5, 0, 1, 0}, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeInstructionData(tt.op, tt.args...)
			require.Len(t, data, tt.wantLen)
			assert.Equal(t, byte(tt.op), data[0])
			for i, arg := range tt.args {
				got := binary.LittleEndian.Uint64(data[1+8*i : 9+8*i])
				assert.Equal(t, arg, got)
			}
		})
	}
}

// The amount bytes must sit immediately after the discriminator in
// little-endian order; a big-endian encoding of the same amount would move
// 720 SOL instead of 0.01.
func TestEncodeSmallSolAmount(t *testing.T) {
	data := encodeInstructionData(OpSolToYotSwapImmediate, SolToLamports(0.01), 0)
	require.Len(t, data, 17)
	assert.Equal(t, byte(8), data[0])
	assert.Equal(t, uint64(10_000_000), binary.LittleEndian.Uint64(data[1:9]))
	assert.Equal(t, []byte{0x80, 0x96, 0x98, 0x00, 0x00, 0x00, 0x00, 0x00}, data[1:9])
}

func TestSolToLamports(t *testing.T) {
	assert.Equal(t, uint64(1_000_000_000), SolToLamports(1))
	assert.Equal(t, uint64(10_000_000), SolToLamports(0.01))
	assert.Equal(t, uint64(0), SolToLamports(0))
}

func TestOpcodeStrings(t *testing.T) {
	assert.Equal(t, "Initialize", OpInitialize.String())
	assert.Equal(t, "CreateLiquidityAccount", OpCreateLiquidityAccount.String())
	assert.Equal(t, "SolToYotSwapImmediate", OpSolToYotSwapImmediate.String())
	assert.Equal(t, "Unknown", Opcode(200).String())
}
