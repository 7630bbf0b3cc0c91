package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

type boardView interface {
	InputDisabled() bool
	Selectable(index int) bool
	DetachCell(index int) bool
	SetMessage(message string)
}

type refresherDep interface {
	Refresh()
}

// Game gates a cell selection behind local and remote checks before submitting the move.
// The submitted move is never applied locally: the next poll tick shows its outcome.
type Game struct {
	logger    *slog.Logger
	session   *session.Context
	watcher   watcherDep
	view      boardView
	refresher refresherDep

	pending sync.WaitGroup
}

func NewGame(logger *slog.Logger, sess *session.Context, watcher watcherDep, view boardView, refresher refresherDep) *Game {
	return &Game{
		logger:    logger.With("component", "game"),
		session:   sess,
		watcher:   watcher,
		view:      view,
		refresher: refresher,
	}
}

// SelectCell submits a move at (x, y) if the cell is free, the move is valid and it is the local
// seat's turn. Dropped moves return an error for which apperror.IsSilent holds.
// The receipt of a submitted move is watched under ctx, so ctx must live as long as the application.
func (that *Game) SelectCell(ctx context.Context, x, y int) (common.Hash, error) {
	log := that.logger.With("method", "SelectCell", "x", x, "y", y)

	index, err := entity.CellIndex(x, y)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", apperror.ErrInvalidUserInput, err)
	}

	handle, ok := that.session.Handle()
	if !ok {
		return common.Hash{}, apperror.ErrNoSession
	}

	seat := that.session.Seat()
	if seat == entity.SeatNone {
		return common.Hash{}, fmt.Errorf("%w: no seat assigned", apperror.ErrNoSession)
	}

	if that.view.InputDisabled() {
		return common.Hash{}, apperror.ErrGameFinished
	}

	if !that.view.Selectable(index) {
		return common.Hash{}, apperror.ErrCellLocked
	}

	if err = that.checkNotFinished(ctx, handle); err != nil {
		return common.Hash{}, err
	}

	valid, err := handle.IsValidMove(ctx, x, y)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to check move: %w", err)
	}
	if !valid {
		log.Debug("move dropped", "reason", "invalid move")
		return common.Hash{}, apperror.ErrInvalidMove
	}

	turn, err := handle.Turn(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get turn: %w", err)
	}
	if turn != seat {
		log.Debug("move dropped", "reason", "not your turn", "turn", turn.Label())
		return common.Hash{}, apperror.ErrNotYourTurn
	}

	// a poll tick may have ended the game between the two round trips
	if that.view.InputDisabled() {
		log.Debug("move dropped", "reason", "game finished during checks")
		return common.Hash{}, apperror.ErrProtocolRace
	}

	if !that.view.DetachCell(index) {
		log.Debug("move dropped", "reason", "cell already submitted")
		return common.Hash{}, apperror.ErrCellLocked
	}

	hash, err := handle.SubmitMove(ctx, x, y)
	if err != nil {
		log.Error("something went wrong while submitting move", "error", err)
		if errors.Is(err, apperror.ErrRemoteRejected) {
			that.view.SetMessage(fmt.Sprintf("Move rejected: %v", err))
		} else {
			that.view.SetMessage("Move could not be submitted")
		}
		return common.Hash{}, fmt.Errorf("failed to submit move: %w", err)
	}

	log.Info("move submitted", "tx", hash.Hex())

	that.pending.Add(1)
	go that.confirm(ctx, index, hash)

	that.refresher.Refresh()

	return hash, nil
}

// Wait blocks until every background move confirmation has finished.
func (that *Game) Wait() {
	that.pending.Wait()
}

func (that *Game) checkNotFinished(ctx context.Context, handle session.GameHandle) error {
	code, err := handle.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	status, err := entity.StatusFromCode(code)
	if err != nil {
		return fmt.Errorf("failed to interpret status: %w", err)
	}

	if status.IsTerminal() {
		return apperror.ErrGameFinished
	}

	return nil
}

func (that *Game) confirm(ctx context.Context, index int, hash common.Hash) {
	defer that.pending.Done()

	log := that.logger.With("method", "confirm", "cell", index, "tx", hash.Hex())

	receipt, err := that.watcher.Watch(ctx, hash)
	if err != nil {
		log.Warn("move receipt not observed", "error", err)
		return
	}

	if !receipt.Success {
		log.Error("move reverted")
		that.view.SetMessage("Move rejected: transaction reverted")
		return
	}

	log.Debug("move included", "block", receipt.BlockNumber)
	that.refresher.Refresh()
}
