package session_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	mockedSession "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/session"
)

var (
	accountOne  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	accountTwo  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	gameAddress = common.HexToAddress("0xABC")
)

func TestContext_Attach(t *testing.T) {
	t.Run("Binds the handle to the current account", func(t *testing.T) {
		// Given: A fresh context and a handle
		sess := session.New(accountOne)
		handle := mockedSession.NewMockGameHandle(t)
		bound := mockedSession.NewMockGameHandle(t)

		handle.EXPECT().WithSender(accountOne).Return(bound).Once()

		// When: Attaching
		err := sess.Attach(handle)

		// Then: The sender-bound handle is kept
		require.NoError(t, err)

		got, ok := sess.Handle()
		assert.True(t, ok)
		assert.Same(t, bound, got)
	})

	t.Run("Binds only once", func(t *testing.T) {
		// Given: A context with a bound handle
		sess := session.New(accountOne)
		handle := mockedSession.NewMockGameHandle(t)
		handle.EXPECT().WithSender(mock.Anything).Return(handle).Once()
		handle.EXPECT().Address().Return(gameAddress).Once()
		require.NoError(t, sess.Attach(handle))

		// When: Attaching another handle
		err := sess.Attach(mockedSession.NewMockGameHandle(t))

		// Then: The second handle is refused
		require.ErrorIs(t, err, apperror.ErrSessionAlreadyBound)
	})
}

func TestContext_Detach(t *testing.T) {
	t.Run("Drops an unseated handle", func(t *testing.T) {
		// Given: A bound, unseated context
		sess := session.New(accountOne)
		handle := mockedSession.NewMockGameHandle(t)
		handle.EXPECT().WithSender(mock.Anything).Return(handle).Once()
		require.NoError(t, sess.Attach(handle))
		sess.SetBetAmount(big.NewInt(5))

		// When: Detaching
		sess.Detach()

		// Then: Nothing is bound
		_, ok := sess.Handle()
		assert.False(t, ok)
		assert.Nil(t, sess.BetAmount())
	})

	t.Run("Keeps a seated handle", func(t *testing.T) {
		// Given: A seated context
		sess := session.New(accountOne)
		handle := mockedSession.NewMockGameHandle(t)
		handle.EXPECT().WithSender(mock.Anything).Return(handle).Once()
		require.NoError(t, sess.Attach(handle))
		require.NoError(t, sess.AssignSeat(entity.SeatTwo))

		// When: Detaching
		sess.Detach()

		// Then: The handle stays bound
		_, ok := sess.Handle()
		assert.True(t, ok)
	})
}

func TestContext_AssignSeat(t *testing.T) {
	// Given: A seated context
	sess := session.New(accountOne)
	require.NoError(t, sess.AssignSeat(entity.SeatOne))

	// When: Assigning again
	err := sess.AssignSeat(entity.SeatTwo)

	// Then: The first seat is kept
	require.ErrorIs(t, err, apperror.ErrSessionAlreadyBound)
	assert.Equal(t, entity.SeatOne, sess.Seat())
}

func TestContext_SetAccount(t *testing.T) {
	// Given: A seated context bound for account one
	sess := session.New(accountOne)
	handle := mockedSession.NewMockGameHandle(t)
	rebound := mockedSession.NewMockGameHandle(t)

	handle.EXPECT().WithSender(accountOne).Return(handle).Once()
	handle.EXPECT().WithSender(accountTwo).Return(rebound).Once()
	rebound.EXPECT().Address().Return(gameAddress).Once()

	require.NoError(t, sess.Attach(handle))
	require.NoError(t, sess.AssignSeat(entity.SeatOne))
	sess.SetBetAmount(big.NewInt(7))

	// When: The account changes
	sess.SetAccount(accountTwo)

	// Then: The handle is rebuilt for the new sender and the record follows
	got, _ := sess.Handle()
	assert.Same(t, rebound, got)

	record, ok := sess.Record()
	require.True(t, ok)
	assert.Equal(t, &entity.SessionRecord{
		Account:         accountTwo.Hex(),
		ContractAddress: gameAddress.Hex(),
		Seat:            entity.SeatOne,
		BetAmount:       "7",
	}, record)
}

func TestContext_Close(t *testing.T) {
	// Given: An open context
	sess := session.New(accountOne)

	// When: Closing twice
	sess.Close()
	sess.Close()

	// Then: Done is closed
	select {
	case <-sess.Done():
	default:
		t.Fatal("done channel is open")
	}
}

func TestContext_BetAmountIsCopied(t *testing.T) {
	// Given: A bet stored in the context
	sess := session.New(accountOne)
	bet := big.NewInt(10)
	sess.SetBetAmount(bet)

	// When: Mutating the caller's value
	bet.SetInt64(99)

	// Then: The stored bet is unchanged
	assert.Equal(t, "10", sess.BetAmount().String())
}
