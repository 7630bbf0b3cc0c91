package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

// Contract is the remote handle of one deployed game, bound to a sender account.
type Contract struct {
	client  *Client
	address common.Address
	sender  common.Address
}

func (that *Contract) Address() common.Address {
	return that.address
}

func (that *Contract) Sender() common.Address {
	return that.sender
}

func (that *Contract) WithSender(sender common.Address) session.GameHandle {
	bound := *that
	bound.sender = sender
	return &bound
}

func (that *Contract) Board(ctx context.Context) (entity.Board, error) {
	value, err := that.read(ctx, methodShowBoard)
	if err != nil {
		return entity.Board{}, err
	}

	board, err := unwrapBoard(value)
	if err != nil {
		return entity.Board{}, fmt.Errorf("failed to decode board: %w", err)
	}

	return board, nil
}

func (that *Contract) Status(ctx context.Context) (uint64, error) {
	value, err := that.read(ctx, methodStatus)
	if err != nil {
		return 0, err
	}

	return unwrapUint(value)
}

func (that *Contract) Turn(ctx context.Context) (entity.Seat, error) {
	value, err := that.read(ctx, methodTurn)
	if err != nil {
		return entity.SeatNone, err
	}

	code, err := unwrapUint(value)
	if err != nil {
		return entity.SeatNone, err
	}

	return entity.SeatFromCode(code)
}

func (that *Contract) BetAmount(ctx context.Context) (*big.Int, error) {
	value, err := that.read(ctx, methodBetAmount)
	if err != nil {
		return nil, err
	}

	return unwrapBig(value)
}

func (that *Contract) IsValidMove(ctx context.Context, x, y int) (bool, error) {
	args, err := that.client.coords(methodValidMove, x, y)
	if err != nil {
		return false, err
	}

	value, err := that.read(ctx, methodValidMove, args...)
	if err != nil {
		return false, err
	}

	valid, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s returned %T", ErrUnexpectedOutput, methodValidMove, value)
	}

	return valid, nil
}

func (that *Contract) SubmitMove(ctx context.Context, x, y int) (common.Hash, error) {
	args, err := that.client.coords(methodMove, x, y)
	if err != nil {
		return common.Hash{}, err
	}

	return that.client.transact(ctx, that.sender, that.address, nil, methodMove, args...)
}

func (that *Contract) Join(ctx context.Context, escrow *big.Int) (common.Hash, error) {
	return that.client.transact(ctx, that.sender, that.address, escrow, methodJoin)
}

func (that *Contract) read(ctx context.Context, method string, args ...any) (any, error) {
	out, err := that.client.call(ctx, that.sender, that.address, method, args...)
	if err != nil {
		return nil, err
	}

	return firstOutput(out, method)
}
