// Package screen keeps the client-side view of the game: what every connected
// user interface renders, and which cells still accept input.
package screen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

const cellCount = entity.BoardSize * entity.BoardSize

// Controls that can carry an inline input error.
const (
	ControlOpponentAddress = "opponent-address"
	ControlBetAmount       = "bet-amount"
	ControlJoinAddress     = "join-address"
)

type Cell struct {
	Mark       string `json:"mark"`
	Selectable bool   `json:"selectable"`
}

type Snapshot struct {
	Cells           [cellCount]Cell   `json:"cells"`
	Turn            string            `json:"turn"`
	Status          string            `json:"status"`
	Message         string            `json:"message"`
	Player          string            `json:"player"`
	NewGame         string            `json:"new_game,omitempty"`
	ContractAddress string            `json:"contract_address,omitempty"`
	JoinPrompt      string            `json:"join_prompt,omitempty"`
	ConfirmOffered  bool              `json:"confirm_offered"`
	InputErrors     map[string]string `json:"input_errors,omitempty"`
	GameOver        bool              `json:"game_over"`
}

type Screen struct {
	mu    sync.Mutex
	state Snapshot

	nextID      int
	subscribers map[int]chan Snapshot
}

func New() *Screen {
	screen := &Screen{subscribers: make(map[int]chan Snapshot)}
	for i := range screen.state.Cells {
		screen.state.Cells[i].Selectable = true
	}
	return screen
}

// ApplyBoard writes the marks of non-empty remote cells. Rendered cells are never cleared.
func (that *Screen) ApplyBoard(board entity.Board) {
	that.update(func(state *Snapshot) {
		for i := range entity.BoardSize {
			for j := range entity.BoardSize {
				if cell := board.At(i, j); cell != entity.CellEmpty {
					state.Cells[entity.BoardSize*i+j].Mark = cell.Mark()
				}
			}
		}
	})
}

func (that *Screen) SetStatus(status entity.Status, code uint64) {
	that.update(func(state *Snapshot) {
		state.Status = fmt.Sprintf("Status: %d", code)
		state.Message = status.Message()
	})
}

func (that *Screen) SetTurn(message string) {
	that.update(func(state *Snapshot) {
		if state.GameOver {
			return
		}
		state.Turn = message
	})
}

func (that *Screen) SetMessage(message string) {
	that.update(func(state *Snapshot) {
		state.Message = message
	})
}

// DisableInput detaches every cell. It reports true only for the call that did it.
func (that *Screen) DisableInput() bool {
	var first bool

	that.update(func(state *Snapshot) {
		if state.GameOver {
			return
		}

		first = true
		state.GameOver = true
		state.Turn = ""
		for i := range state.Cells {
			state.Cells[i].Selectable = false
		}
	})

	return first
}

func (that *Screen) InputDisabled() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state.GameOver
}

// Selectable reports whether cell index still accepts a click and shows no mark.
func (that *Screen) Selectable(index int) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if index < 0 || index >= cellCount {
		return false
	}

	cell := that.state.Cells[index]
	return cell.Selectable && cell.Mark == ""
}

// DetachCell removes the input handler of one cell. It reports false if it was already detached.
func (that *Screen) DetachCell(index int) bool {
	var detached bool

	that.update(func(state *Snapshot) {
		if index < 0 || index >= cellCount || !state.Cells[index].Selectable {
			return
		}

		state.Cells[index].Selectable = false
		detached = true
	})

	return detached
}

func (that *Screen) SetPlayer(seat entity.Seat) {
	that.update(func(state *Snapshot) {
		state.Player = seat.Label()
	})
}

func (that *Screen) SetNewGame(text, address string) {
	that.update(func(state *Snapshot) {
		state.NewGame = text
		state.ContractAddress = address
	})
}

func (that *Screen) SetJoinPrompt(text string, confirm bool) {
	that.update(func(state *Snapshot) {
		state.JoinPrompt = text
		state.ConfirmOffered = confirm
	})
}

func (that *Screen) SetInputError(control, message string) {
	that.update(func(state *Snapshot) {
		if state.InputErrors == nil {
			state.InputErrors = make(map[string]string)
		}
		state.InputErrors[control] = message
	})
}

func (that *Screen) ClearInputErrors(controls ...string) {
	that.update(func(state *Snapshot) {
		for _, control := range controls {
			delete(state.InputErrors, control)
		}
	})
}

func (that *Screen) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.copyState()
}

// Subscribe returns a channel that always holds the latest snapshot after a change.
// Intermediate snapshots may be skipped.
func (that *Screen) Subscribe() (<-chan Snapshot, func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.nextID
	that.nextID++

	updates := make(chan Snapshot, 1)
	updates <- that.copyState()
	that.subscribers[id] = updates

	return updates, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if ch, ok := that.subscribers[id]; ok {
			delete(that.subscribers, id)
			close(ch)
		}
	}
}

func (that *Screen) update(change func(state *Snapshot)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	before := that.copyState()
	change(&that.state)
	if reflect.DeepEqual(before, that.state) {
		return
	}

	snapshot := that.copyState()
	for _, ch := range that.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func (that *Screen) copyState() Snapshot {
	snapshot := that.state
	if that.state.InputErrors != nil {
		snapshot.InputErrors = make(map[string]string, len(that.state.InputErrors))
		for k, v := range that.state.InputErrors {
			snapshot.InputErrors[k] = v
		}
	}
	return snapshot
}
