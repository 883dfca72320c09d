// Package solbc is a thin adapter over the solana-go RPC client. It is the
// transport collaborator for the pumpfun package: account reads and
// transaction submission, nothing else. Timeouts are inherited from the
// caller's context; no retries happen here.
package solbc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/solanakit/pumpfun-go/pkg/pumpfun"
)

// ErrAccountNotFound marks a requested account that does not exist or is
// unfunded. It is the pumpfun sentinel so that callers can match with
// errors.Is regardless of which layer produced the failure.
var ErrAccountNotFound = pumpfun.ErrAccountNotFound

// IsAccountNotFoundError reports whether err describes a missing account.
func IsAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAccountNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// Client wraps a single RPC endpoint.
type Client struct {
	rpc    *rpc.Client
	logger *zap.Logger
}

// NewClient creates a client for the given RPC URL.
func NewClient(rpcURL string, logger *zap.Logger) *Client {
	return &Client{
		rpc:    rpc.New(rpcURL),
		logger: logger.Named("solbc-client"),
	}
}

// GetRecentBlockhash returns the latest finalized blockhash.
func (c *Client) GetRecentBlockhash(ctx context.Context) (solana.Hash, error) {
	result, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		c.logger.Error("GetRecentBlockhash error", zap.Error(err))
		return solana.Hash{}, err
	}
	return result.Value.Blockhash, nil
}

// SendTransaction submits a signed transaction and returns its signature.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		c.logger.Error("SendTransaction error", zap.Error(err))
		return solana.Signature{}, err
	}
	return sig, nil
}

// GetAccountDataWithOwner fetches an account's raw data and owning program.
// Returns ErrAccountNotFound when the account does not exist.
func (c *Client) GetAccountDataWithOwner(ctx context.Context, pubkey solana.PublicKey) ([]byte, solana.PublicKey, error) {
	result, err := c.rpc.GetAccountInfo(ctx, pubkey)
	if err != nil {
		c.logger.Debug("GetAccountInfo error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		if IsAccountNotFoundError(err) {
			return nil, solana.PublicKey{}, ErrAccountNotFound
		}
		return nil, solana.PublicKey{}, err
	}
	if result == nil || result.Value == nil {
		return nil, solana.PublicKey{}, ErrAccountNotFound
	}
	return result.Value.Data.GetBinary(), result.Value.Owner, nil
}

// GetTokenAccountBalance returns the raw token balance of an associated
// token account, falling back from Processed to Confirmed commitment when
// the faster level has not seen the account yet.
func (c *Client) GetTokenAccountBalance(ctx context.Context, ata solana.PublicKey) (uint64, error) {
	result, err := c.rpc.GetTokenAccountBalance(ctx, ata, rpc.CommitmentProcessed)
	if err != nil {
		c.logger.Debug("GetTokenAccountBalance retrying with Confirmed commitment",
			zap.String("ata", ata.String()),
			zap.Error(err))
		result, err = c.rpc.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	}
	if err != nil {
		return 0, err
	}
	if result == nil || result.Value == nil || result.Value.Amount == "" {
		return 0, ErrAccountNotFound
	}
	balance, err := strconv.ParseUint(result.Value.Amount, 10, 64)
	if err != nil {
		return 0, err
	}
	return balance, nil
}
