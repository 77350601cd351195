// internal/blockchain/solbc/pool.go
package solbc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var ErrNoHealthyEndpoints = errors.New("no healthy rpc endpoints")

// endpointCooldown задаёт время, через которое отключённый узел снова
// участвует в ротации.
const endpointCooldown = 30 * time.Second

// endpoint хранит одного RPC-провайдера вместе с его метриками.
type endpoint struct {
	client *rpc.Client
	url    string

	mu         sync.RWMutex
	active     bool
	disabledAt time.Time

	successCount uint64
	errorCount   uint64
}

func (e *endpoint) isActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active {
		return true
	}
	// Остывший узел возвращаем в ротацию
	return time.Since(e.disabledAt) > endpointCooldown
}

func (e *endpoint) setActive(state bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = state
	if !state {
		e.disabledAt = time.Now()
	}
}

func (e *endpoint) markResult(ok bool) {
	if ok {
		atomic.AddUint64(&e.successCount, 1)
		e.setActive(true)
		return
	}
	atomic.AddUint64(&e.errorCount, 1)
}

// pool ротирует запросы по списку RPC-узлов. Узел, вернувший ошибку,
// выбывает из ротации до истечения cooldown.
type pool struct {
	endpoints []*endpoint
	logger    *zap.Logger

	mu   sync.Mutex
	curr int
}

func newPool(rpcURLs []string, logger *zap.Logger) *pool {
	endpoints := make([]*endpoint, 0, len(rpcURLs))
	for _, url := range rpcURLs {
		endpoints = append(endpoints, &endpoint{
			client: rpc.New(url),
			url:    url,
			active: true,
		})
	}
	return &pool{endpoints: endpoints, logger: logger}
}

// next возвращает следующий активный узел (round-robin).
func (p *pool) next() *endpoint {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < len(p.endpoints); i++ {
		p.curr = (p.curr + 1) % len(p.endpoints)
		if p.endpoints[p.curr].isActive() {
			return p.endpoints[p.curr]
		}
	}
	return nil
}

// execute выполняет операцию, перебирая узлы пула. Каждый узел получает не
// более одной попытки на вызов; неудачный узел помечается неактивным.
func (p *pool) execute(ctx context.Context, op func(*rpc.Client) error) error {
	var lastErr error
	for i := 0; i < len(p.endpoints); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		ep := p.next()
		if ep == nil {
			if lastErr != nil {
				return lastErr
			}
			return ErrNoHealthyEndpoints
		}

		err := op(ep.client)
		// "Not found" приходит от исправного узла: не ротируем
		if err == nil || errors.Is(err, rpc.ErrNotFound) {
			ep.markResult(true)
			return err
		}
		ep.markResult(false)

		lastErr = err
		ep.setActive(false)
		p.logger.Warn("RPC endpoint failed, rotating",
			zap.String("url", ep.url),
			zap.Error(err))
	}
	if lastErr != nil {
		return lastErr
	}
	return ErrNoHealthyEndpoints
}
