package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	var payload NewGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(conn, msg.Action, "malformed payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	address, err := that.uSession.CreateGame(ctx, payload.Opponent, payload.Amount)
	if err != nil {
		that.sendError(conn, msg.Action, userFacing(err))
		return fmt.Errorf("failed to create game: %w", err)
	}

	return conn.send(msg.Action, ResponsePayload{Address: address.Hex()})
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *connection) error {
	var payload JoinPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(conn, msg.Action, "malformed payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	bet, err := that.uSession.JoinGame(ctx, payload.Address)
	if err != nil {
		that.sendError(conn, msg.Action, userFacing(err))
		return fmt.Errorf("failed to join game: %w", err)
	}

	return conn.send(msg.Action, ResponsePayload{BetAmount: entity.FormatEther(bet)})
}

func (that *Server) handleConfirmJoin(ctx context.Context, msg *Message, conn *connection) error {
	if err := that.uSession.ConfirmJoin(ctx); err != nil {
		that.sendError(conn, msg.Action, userFacing(err))
		return fmt.Errorf("failed to confirm join: %w", err)
	}

	return conn.send(msg.Action, ResponsePayload{})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn", "connection", conn.id)

	var payload TurnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(conn, msg.Action, "malformed payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	x, y := payload.X, payload.Y
	if payload.Cell != nil {
		var err error
		if x, y, err = entity.CellPosition(*payload.Cell); err != nil {
			that.sendError(conn, msg.Action, userFacing(apperror.ErrInvalidUserInput))
			return fmt.Errorf("%w: %w", apperror.ErrInvalidUserInput, err)
		}
	}

	hash, err := that.uGame.SelectCell(ctx, x, y)
	if err != nil {
		// dropped moves leave no trace on the screen
		if apperror.IsSilent(err) {
			log.Debug("move dropped", "x", x, "y", y, "reason", err)
			return nil
		}

		that.sendError(conn, msg.Action, userFacing(err))
		return fmt.Errorf("failed to select cell: %w", err)
	}

	return conn.send(msg.Action, ResponsePayload{TxHash: hash.Hex()})
}

// userFacing maps an error onto the text shown next to the failed action.
func userFacing(err error) string {
	for _, known := range []error{
		apperror.ErrInvalidUserInput,
		apperror.ErrSessionAlreadyBound,
		apperror.ErrNoSession,
		apperror.ErrZeroBetAmount,
		apperror.ErrGameFinished,
		apperror.ErrRemoteRejected,
		apperror.ErrRemoteUnavailable,
		apperror.ErrWatchExhausted,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "something went wrong"
}
