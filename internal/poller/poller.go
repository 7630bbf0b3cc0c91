// Package poller drives reconciliation of the bound game at a fixed cadence.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

type reconcilerDep interface {
	Reconcile(ctx context.Context, handle session.GameHandle) (*entity.GameView, error)
}

type turnView interface {
	SetTurn(message string)
}

// TerminalHook runs once, on the first tick that observes a finished game.
type TerminalHook func(ctx context.Context, view *entity.GameView)

// Policy controls the tick cadence. Failed ticks are retried with a delay growing up to
// MaxInterval; after MaxFailures consecutive failures the poller gives up. Zero means no limit.
type Policy struct {
	Interval       time.Duration
	MaxInterval    time.Duration
	MaxFailures    uint64
	StopOnTerminal bool
}

func (that Policy) failureBackOff() backoff.BackOff {
	var policy backoff.BackOff = backoff.NewConstantBackOff(that.Interval)

	if that.MaxInterval > that.Interval {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = that.Interval
		exp.MaxInterval = that.MaxInterval
		exp.MaxElapsedTime = 0
		exp.Reset()
		policy = exp
	}

	if that.MaxFailures > 0 {
		policy = backoff.WithMaxRetries(policy, that.MaxFailures)
	}

	return policy
}

type Poller struct {
	logger     *slog.Logger
	session    *session.Context
	reconciler reconcilerDep
	view       turnView
	policy     Policy

	hooks   []TerminalHook
	refresh chan struct{}
}

func New(logger *slog.Logger, sess *session.Context, reconciler reconcilerDep, view turnView, policy Policy) *Poller {
	return &Poller{
		logger:     logger.With("component", "poller"),
		session:    sess,
		reconciler: reconciler,
		view:       view,
		policy:     policy,
		refresh:    make(chan struct{}, 1),
	}
}

// OnTerminal registers a hook. Hooks must be registered before Run.
func (that *Poller) OnTerminal(hook TerminalHook) {
	that.hooks = append(that.hooks, hook)
}

// Refresh asks for a tick as soon as possible. Requests made before the tick are coalesced.
func (that *Poller) Refresh() {
	select {
	case that.refresh <- struct{}{}:
	default:
	}
}

// Run ticks until ctx is done, the session is closed, the game is over (when StopOnTerminal is
// set) or the failure budget is spent. The first tick runs immediately.
func (that *Poller) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	failures := that.policy.failureBackOff()
	finished := false

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("poller stopped")
			return nil
		case <-that.session.Done():
			log.Info("session closed, poller stopped")
			return nil
		case <-timer.C:
		case <-that.refresh:
		}

		next := that.policy.Interval

		view, err := that.tick(ctx)
		switch {
		case err != nil:
			next = failures.NextBackOff()
			if next == backoff.Stop {
				log.Error("giving up after consecutive failed ticks", "error", err)
				return fmt.Errorf("%w: polling gave up: %w", apperror.ErrRemoteUnavailable, err)
			}
			log.Warn("poll tick skipped", "error", err, "retry_in", next)

		case view == nil:
			failures.Reset()

		case view.IsTerminal():
			failures.Reset()
			if !finished {
				finished = true
				that.finish(ctx, view)
			}
			if that.policy.StopOnTerminal {
				log.Info("game over, poller stopped", "status", view.Status.String())
				return nil
			}

		default:
			failures.Reset()
		}

		timer.Reset(next)
	}
}

// tick reconciles the bound game once. A nil view without error means no seat is taken yet:
// a game bound by an unconfirmed join is not polled.
func (that *Poller) tick(ctx context.Context) (*entity.GameView, error) {
	handle, ok := that.session.Handle()
	if !ok || that.session.Seat() == entity.SeatNone {
		return nil, nil
	}

	view, err := that.reconciler.Reconcile(ctx, handle)
	if err != nil {
		return nil, err
	}

	if !view.IsTerminal() {
		that.view.SetTurn(view.TurnMessage(that.session.Seat()))
	}

	return view, nil
}

func (that *Poller) finish(ctx context.Context, view *entity.GameView) {
	for _, hook := range that.hooks {
		hook(ctx, view)
	}
}
