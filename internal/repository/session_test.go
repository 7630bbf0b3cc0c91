package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/testing/suite"
)

const account = "0x1111111111111111111111111111111111111111"

func newRecord() *entity.SessionRecord {
	return &entity.SessionRecord{
		Account:         account,
		ContractAddress: "0x0000000000000000000000000000000000000ABC",
		Seat:            entity.SeatOne,
		BetAmount:       "500000000000000000",
	}
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a seated session record
	record := newRecord()

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, record)

	// Then: no error should be returned, and the record is stored under the account key
	require.NoError(t, err)

	exists, err := st.Storage.Exists(ctx, "session:"+account).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session record
		record := newRecord()
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, record))

		// When: GetByID is called with its account
		retrieved, err := sessionRepo.GetByID(ctx, account)

		// Then: the retrieved record should match the saved one
		require.NoError(t, err)
		assert.Equal(t, record, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: GetByID is called for an account without a session
		retrieved, err := sessionRepo.GetByID(ctx, "0x2222222222222222222222222222222222222222")

		// Then: ErrNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session record
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newRecord()))

		// When: DeleteByID is called
		err := sessionRepo.DeleteByID(ctx, account)

		// Then: the record is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, account)
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("DeleteByID_Missing", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: DeleteByID is called for an account without a session
		err := sessionRepo.DeleteByID(ctx, account)

		// Then: no error should be returned
		require.NoError(t, err)
	})
}
