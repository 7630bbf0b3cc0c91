// Package watcher polls the ledger for transaction receipts.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

type receiptLookup interface {
	Receipt(ctx context.Context, hash common.Hash) (*entity.Receipt, error)
}

// Policy controls the lookup cadence. With MaxInterval above Interval the delay grows
// exponentially; MaxAttempts of zero polls until cancelled.
type Policy struct {
	Interval    time.Duration
	MaxInterval time.Duration
	MaxAttempts uint64
}

func (that Policy) backOff() backoff.BackOff {
	var policy backoff.BackOff = backoff.NewConstantBackOff(that.Interval)

	if that.MaxInterval > that.Interval {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = that.Interval
		exp.MaxInterval = that.MaxInterval
		exp.MaxElapsedTime = 0
		exp.RandomizationFactor = 0
		exp.Reset()
		policy = exp
	}

	if that.MaxAttempts > 0 {
		policy = backoff.WithMaxRetries(policy, that.MaxAttempts)
	}

	return policy
}

type Watcher struct {
	logger *slog.Logger
	lookup receiptLookup
	policy Policy
}

func New(logger *slog.Logger, lookup receiptLookup, policy Policy) *Watcher {
	return &Watcher{
		logger: logger.With("component", "watcher"),
		lookup: lookup,
		policy: policy,
	}
}

// Pending is one in-flight receipt watch.
type Pending struct {
	hash common.Hash

	cancel     context.CancelFunc
	cancelOnce sync.Once

	done    chan struct{}
	receipt *entity.Receipt
	err     error
}

// Start begins polling for the receipt of hash in the background.
func (that *Watcher) Start(ctx context.Context, hash common.Hash) *Pending {
	ctx, cancel := context.WithCancel(ctx)

	pending := &Pending{
		hash:   hash,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go that.run(ctx, pending, that.policy.backOff())

	return pending
}

// Watch blocks until the receipt of hash is observed.
func (that *Watcher) Watch(ctx context.Context, hash common.Hash) (*entity.Receipt, error) {
	pending := that.Start(ctx, hash)
	defer pending.Cancel()

	return pending.Wait(ctx)
}

func (that *Watcher) run(ctx context.Context, pending *Pending, policy backoff.BackOff) {
	log := that.logger.With("method", "run", "tx", pending.hash.Hex())

	defer close(pending.done)
	defer pending.Cancel()

	for {
		receipt, err := that.lookup.Receipt(ctx, pending.hash)
		if err != nil {
			log.Debug("receipt lookup failed", "error", err)
		}

		if receipt != nil {
			log.Debug("receipt observed", "success", receipt.Success, "block", receipt.BlockNumber)
			pending.receipt = receipt
			return
		}

		delay := policy.NextBackOff()
		if delay == backoff.Stop {
			pending.err = fmt.Errorf("%w: %s", apperror.ErrWatchExhausted, pending.hash.Hex())
			return
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			pending.err = fmt.Errorf("receipt watch for %s stopped: %w", pending.hash.Hex(), ctx.Err())
			return
		case <-timer.C:
		}
	}
}

func (that *Pending) Hash() common.Hash {
	return that.hash
}

// Cancel stops polling. Only the first call has an effect.
func (that *Pending) Cancel() {
	that.cancelOnce.Do(that.cancel)
}

func (that *Pending) Done() <-chan struct{} {
	return that.done
}

// Wait returns the receipt once observed, or the reason polling ended.
func (that *Pending) Wait(ctx context.Context) (*entity.Receipt, error) {
	select {
	case <-that.done:
		return that.receipt, that.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
