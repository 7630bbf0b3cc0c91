// Package reconciler turns one poll tick's remote snapshot into the local view.
package reconciler

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

type view interface {
	ApplyBoard(board entity.Board)
	SetStatus(status entity.Status, code uint64)
	DisableInput() bool
	InputDisabled() bool
}

type Reconciler struct {
	logger *slog.Logger
	view   view
}

func New(logger *slog.Logger, view view) *Reconciler {
	return &Reconciler{
		logger: logger.With("component", "reconciler"),
		view:   view,
	}
}

// Reconcile reads board, status and turn concurrently and applies them to the view.
// Any failed read skips the whole tick: the view is left untouched.
func (that *Reconciler) Reconcile(ctx context.Context, handle session.GameHandle) (*entity.GameView, error) {
	log := that.logger.With("method", "Reconcile")

	var (
		board entity.Board
		code  uint64
		turn  entity.Seat
	)

	// once the game is over locally, turn ownership is no longer asked for
	readTurn := !that.view.InputDisabled()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		board, err = handle.Board(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		code, err = handle.Status(groupCtx)
		return err
	})
	if readTurn {
		group.Go(func() error {
			var err error
			turn, err = handle.Turn(groupCtx)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}

	status, err := entity.StatusFromCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret status: %w", err)
	}

	gameView := &entity.GameView{
		Board:      board,
		Status:     status,
		StatusCode: code,
		Turn:       turn,
	}

	that.view.ApplyBoard(board)
	that.view.SetStatus(status, code)

	if status.IsTerminal() && that.view.DisableInput() {
		log.Info("game over, input disabled", "status", status.String())
	}

	return gameView, nil
}
