package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

// Wallet is the account provider backing the node's signer.
type Wallet struct {
	logger *slog.Logger
	rpc    rpcCaller
}

func NewWallet(logger *slog.Logger, client *Client) *Wallet {
	return &Wallet{
		logger: logger.With("component", "wallet"),
		rpc:    client.rpc,
	}
}

// Accounts asks for account access first and falls back to the plain account list
// for nodes that do not implement eth_requestAccounts.
func (that *Wallet) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address

	err := that.rpc.CallContext(ctx, &accounts, "eth_requestAccounts")
	if err != nil {
		var rpcErr rpc.Error
		if !errors.As(err, &rpcErr) {
			return nil, classify(err)
		}

		if err = that.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
			return nil, classify(err)
		}
	}

	if len(accounts) == 0 {
		return nil, apperror.ErrNoAccounts
	}

	return accounts, nil
}

func (that *Wallet) Primary(ctx context.Context) (common.Address, error) {
	accounts, err := that.Accounts(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get accounts: %w", err)
	}

	return accounts[0], nil
}

// Watch emits the new primary account every time it differs from the last one seen.
// The channel is closed when ctx is done.
func (that *Wallet) Watch(ctx context.Context, interval time.Duration, current common.Address) <-chan common.Address {
	log := that.logger.With("method", "Watch")
	changes := make(chan common.Address)

	go func() {
		defer close(changes)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			account, err := that.Primary(ctx)
			if err != nil {
				log.Debug("could not read accounts", "error", err)
				continue
			}

			if account == current {
				continue
			}

			current = account
			select {
			case changes <- account:
			case <-ctx.Done():
				return
			}
		}
	}()

	return changes
}
