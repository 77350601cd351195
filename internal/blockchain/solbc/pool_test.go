// internal/blockchain/solbc/pool_test.go
package solbc

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPool(urls ...string) *pool {
	return newPool(urls, zap.NewNop())
}

func TestPoolRotatesOnFailure(t *testing.T) {
	p := testPool("http://one", "http://two")

	calls := 0
	err := p.execute(context.Background(), func(*rpc.Client) error {
		calls++
		if calls == 1 {
			return errors.New("node down")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// One endpoint should now be out of rotation.
	active := 0
	for _, ep := range p.endpoints {
		if ep.isActive() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestPoolReturnsLastErrorWhenAllFail(t *testing.T) {
	p := testPool("http://one", "http://two")

	boom := errors.New("boom")
	err := p.execute(context.Background(), func(*rpc.Client) error { return boom })
	assert.ErrorIs(t, err, boom)

	// Everything is down now; the sentinel surfaces.
	err = p.execute(context.Background(), func(*rpc.Client) error { return nil })
	assert.ErrorIs(t, err, ErrNoHealthyEndpoints)
}

func TestPoolDoesNotRotateOnNotFound(t *testing.T) {
	p := testPool("http://one", "http://two")

	calls := 0
	err := p.execute(context.Background(), func(*rpc.Client) error {
		calls++
		return rpc.ErrNotFound
	})
	assert.ErrorIs(t, err, rpc.ErrNotFound)
	assert.Equal(t, 1, calls)

	for _, ep := range p.endpoints {
		assert.True(t, ep.isActive())
	}
}

func TestPoolHonorsContextCancellation(t *testing.T) {
	p := testPool("http://one")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.execute(ctx, func(*rpc.Client) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsAccountNotFoundError(t *testing.T) {
	assert.True(t, IsAccountNotFoundError(ErrAccountNotFound))
	assert.True(t, IsAccountNotFoundError(rpc.ErrNotFound))
	assert.True(t, IsAccountNotFoundError(errors.New("account ... not found")))
	assert.False(t, IsAccountNotFoundError(errors.New("connection refused")))
	assert.False(t, IsAccountNotFoundError(nil))
}
