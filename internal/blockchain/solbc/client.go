// internal/blockchain/solbc/client.go
package solbc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rovshanmuradov/multihub-swap/internal/blockchain"
)

// Client is an adapter over the solana-go RPC client with endpoint failover.
// All requests pass through a shared rate limiter so confirmation polling
// cannot starve the endpoints' request budget.
type Client struct {
	pool    *pool
	logger  *zap.Logger
	limiter *rate.Limiter
}

var (
	ErrAccountNotFound = errors.New("account not found")
)

// IsAccountNotFoundError reports whether err is the RPC "not found" class.
func IsAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, rpc.ErrNotFound) ||
		strings.Contains(strings.ToLower(err.Error()), "not found")
}

// NewClient создаёт новый клиент поверх пула RPC-узлов.
func NewClient(rpcURLs []string, logger *zap.Logger) *Client {
	log := logger.Named("solbc-client")
	return &Client{
		pool:    newPool(rpcURLs, log),
		logger:  log,
		limiter: rate.NewLimiter(rate.Limit(20), 40), // public endpoints throttle around this
	}
}

func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// GetRecentBlockhash получает последний blockhash.
func (c *Client) GetRecentBlockhash(ctx context.Context) (solana.Hash, error) {
	if err := c.wait(ctx); err != nil {
		return solana.Hash{}, err
	}
	var hash solana.Hash
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		result, err := node.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
		if err != nil {
			return err
		}
		hash = result.Value.Blockhash
		return nil
	})
	if err != nil {
		c.logger.Error("GetRecentBlockhash error", zap.Error(err))
		return solana.Hash{}, err
	}
	return hash, nil
}

// GetAccountInfo получает информацию об аккаунте.
func (c *Client) GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var result *rpc.GetAccountInfoResult
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		var err error
		result, err = node.GetAccountInfo(ctx, pubkey)
		return err
	})
	if err != nil {
		c.logger.Debug("GetAccountInfo error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}

// GetSignatureStatuses получает статусы транзакций.
func (c *Client) GetSignatureStatuses(ctx context.Context, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var result *rpc.GetSignatureStatusesResult
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		var err error
		result, err = node.GetSignatureStatuses(ctx, false, signatures...)
		return err
	})
	if err != nil {
		c.logger.Error("GetSignatureStatuses error", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// SendTransactionWithOpts отправляет транзакцию с заданными опциями.
// Транзакция не ротируется между узлами: повторная отправка решается выше,
// где ошибка уже классифицирована.
func (c *Client) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts blockchain.TransactionOptions) (solana.Signature, error) {
	if err := c.wait(ctx); err != nil {
		return solana.Signature{}, err
	}
	node := c.pool.next()
	if node == nil {
		return solana.Signature{}, ErrNoHealthyEndpoints
	}
	sig, err := node.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       opts.SkipPreflight,
		PreflightCommitment: opts.PreflightCommitment,
	})
	node.markResult(err == nil)
	if err != nil {
		c.logger.Error("SendTransactionWithOpts error", zap.Error(err))
		return solana.Signature{}, err
	}
	return sig, nil
}

// SimulateTransaction симулирует транзакцию и возвращает результат симуляции.
func (c *Client) SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*blockchain.SimulationResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var result *rpc.SimulateTransactionResponse
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		var err error
		result, err = node.SimulateTransaction(ctx, tx)
		return err
	})
	if err != nil {
		c.logger.Error("SimulateTransaction error", zap.Error(err))
		return nil, err
	}
	units := uint64(0)
	if result.Value.UnitsConsumed != nil {
		units = *result.Value.UnitsConsumed
	}
	return &blockchain.SimulationResult{
		Err:           result.Value.Err,
		Logs:          result.Value.Logs,
		UnitsConsumed: units,
	}, nil
}

// GetBalance получает баланс аккаунта.
func (c *Client) GetBalance(ctx context.Context, pubkey solana.PublicKey, commitment rpc.CommitmentType) (uint64, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}
	var balance uint64
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		result, err := node.GetBalance(ctx, pubkey, commitment)
		if err != nil {
			return err
		}
		balance = result.Value
		return nil
	})
	if err != nil {
		c.logger.Error("GetBalance error", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// GetTokenAccountBalance получает баланс токенного аккаунта.
func (c *Client) GetTokenAccountBalance(ctx context.Context, account solana.PublicKey) (*rpc.GetTokenAccountBalanceResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var result *rpc.GetTokenAccountBalanceResult
	err := c.pool.execute(ctx, func(node *rpc.Client) error {
		var err error
		result, err = node.GetTokenAccountBalance(ctx, account, rpc.CommitmentConfirmed)
		return err
	})
	return result, err
}

// WaitForTransactionConfirmation ожидает подтверждения транзакции (с простым polling‑механизмом).
func (c *Client) WaitForTransactionConfirmation(ctx context.Context, signature solana.Signature, _ rpc.CommitmentType) error {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(30 * time.Second)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			return fmt.Errorf("confirmation timeout")
		case <-ticker.C:
			statuses, err := c.GetSignatureStatuses(ctx, signature)
			if err != nil {
				c.logger.Warn("Error getting signature statuses", zap.Error(err))
				continue
			}
			if statuses != nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
				status := statuses.Value[0]
				if status.Err != nil {
					return fmt.Errorf("transaction failed on-chain: %v", status.Err)
				}
				if status.ConfirmationStatus == rpc.ConfirmationStatusFinalized ||
					status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed {
					return nil
				}
			}
		}
	}
}

// Гарантируем, что Client реализует интерфейс blockchain.Client.
var _ blockchain.Client = (*Client)(nil)
