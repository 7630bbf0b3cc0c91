package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

func TestScreen_ApplyBoard(t *testing.T) {
	t.Run("Renders marks at 3*i+j and never clears them", func(t *testing.T) {
		// Given: a screen that already shows X at (0, 2)
		screen := New()
		first := entity.Board{}
		first[0][2] = entity.CellX
		screen.ApplyBoard(first)

		// When: a later snapshot omits that cell and adds O at (2, 1)
		second := entity.Board{}
		second[2][1] = entity.CellO
		screen.ApplyBoard(second)

		// Then: both marks are rendered
		snapshot := screen.Snapshot()
		assert.Equal(t, "X", snapshot.Cells[2].Mark)
		assert.Equal(t, "O", snapshot.Cells[7].Mark)
		assert.False(t, screen.Selectable(2))
		assert.True(t, screen.Selectable(0))
	})
}

func TestScreen_DisableInput(t *testing.T) {
	t.Run("Detaches every cell exactly once", func(t *testing.T) {
		// Given: a fresh screen with a turn message
		screen := New()
		screen.SetTurn(entity.MessageYourTurn)

		// When: disabling input twice
		first := screen.DisableInput()
		second := screen.DisableInput()

		// Then: only the first call acts and no cell is selectable
		assert.True(t, first)
		assert.False(t, second)
		assert.True(t, screen.InputDisabled())
		for i := range cellCount {
			assert.False(t, screen.Selectable(i))
		}

		// And: turn messages are no longer rendered
		screen.SetTurn(entity.MessageNotYourTurn)
		assert.Empty(t, screen.Snapshot().Turn)
	})
}

func TestScreen_DetachCell(t *testing.T) {
	t.Run("Guards against a second detach of the same cell", func(t *testing.T) {
		screen := New()

		assert.True(t, screen.DetachCell(4))
		assert.False(t, screen.DetachCell(4))
		assert.False(t, screen.Selectable(4))
		assert.False(t, screen.DetachCell(9))
	})
}

func TestScreen_Subscribe(t *testing.T) {
	t.Run("Delivers the current and then the latest snapshot", func(t *testing.T) {
		// Given: a subscriber
		screen := New()
		updates, unsubscribe := screen.Subscribe()

		initial := <-updates
		assert.Empty(t, initial.Message)

		// When: two changes happen before the subscriber reads
		screen.SetMessage("first")
		screen.SetMessage("second")

		// Then: only the latest is pending
		latest := <-updates
		assert.Equal(t, "second", latest.Message)
		assert.Empty(t, updates)

		// And: unsubscribing closes the channel
		unsubscribe()
		_, open := <-updates
		assert.False(t, open)
	})

	t.Run("Unchanged state is not re-sent", func(t *testing.T) {
		screen := New()
		screen.SetMessage("same")
		updates, unsubscribe := screen.Subscribe()
		defer unsubscribe()
		<-updates

		screen.SetMessage("same")

		assert.Empty(t, updates)
	})
}

func TestScreen_InputErrors(t *testing.T) {
	screen := New()

	screen.SetInputError(ControlBetAmount, "invalid amount")
	snapshot := screen.Snapshot()
	require.Contains(t, snapshot.InputErrors, ControlBetAmount)

	// mutating the copy leaves the screen untouched
	snapshot.InputErrors[ControlBetAmount] = "changed"
	assert.Equal(t, "invalid amount", screen.Snapshot().InputErrors[ControlBetAmount])

	screen.ClearInputErrors(ControlBetAmount)
	assert.Empty(t, screen.Snapshot().InputErrors)
}
