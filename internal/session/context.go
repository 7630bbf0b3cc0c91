// Package session holds the explicit state of one match: the bound game handle,
// the local seat, the agreed escrow and the sender account.
package session

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

// GameHandle is a typed proxy to one deployed game instance.
type GameHandle interface {
	Address() common.Address

	Board(ctx context.Context) (entity.Board, error)
	Status(ctx context.Context) (uint64, error)
	Turn(ctx context.Context) (entity.Seat, error)
	BetAmount(ctx context.Context) (*big.Int, error)
	IsValidMove(ctx context.Context, x, y int) (bool, error)

	SubmitMove(ctx context.Context, x, y int) (common.Hash, error)
	Join(ctx context.Context, escrow *big.Int) (common.Hash, error)

	WithSender(sender common.Address) GameHandle
}

type Context struct {
	mu sync.RWMutex

	handle  GameHandle
	seat    entity.Seat
	bet     *big.Int
	account common.Address

	closeOnce sync.Once
	done      chan struct{}
}

func New(account common.Address) *Context {
	return &Context{
		account: account,
		done:    make(chan struct{}),
	}
}

// Attach binds the handle. Only one handle is ever bound per context.
func (that *Context) Attach(handle GameHandle) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.handle != nil {
		return fmt.Errorf("%w: %s", apperror.ErrSessionAlreadyBound, that.handle.Address().Hex())
	}

	that.handle = handle.WithSender(that.account)

	return nil
}

// Detach drops a handle whose join was never confirmed. A seated session keeps its handle.
func (that *Context) Detach() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.seat != entity.SeatNone {
		return
	}

	that.handle = nil
	that.bet = nil
}

func (that *Context) Handle() (GameHandle, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.handle, that.handle != nil
}

// AssignSeat sets the local seat exactly once.
func (that *Context) AssignSeat(seat entity.Seat) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.seat != entity.SeatNone {
		return fmt.Errorf("%w: seat %d already assigned", apperror.ErrSessionAlreadyBound, that.seat)
	}

	that.seat = seat

	return nil
}

func (that *Context) Seat() entity.Seat {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.seat
}

func (that *Context) SetBetAmount(bet *big.Int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.bet = new(big.Int).Set(bet)
}

func (that *Context) BetAmount() *big.Int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.bet == nil {
		return nil
	}
	return new(big.Int).Set(that.bet)
}

// SetAccount switches the sender identity and rebuilds the bound handle for it.
// The seat is left untouched.
func (that *Context) SetAccount(account common.Address) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.account = account
	if that.handle != nil {
		that.handle = that.handle.WithSender(account)
	}
}

func (that *Context) Account() common.Address {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.account
}

// Record returns the persisted form, or false while no seat is assigned.
func (that *Context) Record() (*entity.SessionRecord, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.handle == nil || that.seat == entity.SeatNone {
		return nil, false
	}

	record := &entity.SessionRecord{
		Account:         that.account.Hex(),
		ContractAddress: that.handle.Address().Hex(),
		Seat:            that.seat,
		BetAmount:       "0",
	}
	if that.bet != nil {
		record.BetAmount = that.bet.String()
	}

	return record, true
}

// Close ends the session; Done is closed afterwards. Safe to call repeatedly.
func (that *Context) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Context) Done() <-chan struct{} {
	return that.done
}
