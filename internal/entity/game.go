package entity

import (
	"errors"
	"fmt"
)

// BoardSize is the side length of the board; cells are addressed as (x, y) with x the row.
const BoardSize = 3

const (
	MessageYourTurn    = "Your turn"
	MessageNotYourTurn = "Not your turn"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownCellState  = errors.New("unknown cell state")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownSeat       = errors.New("unknown seat")
)

type CellState uint8

const (
	CellEmpty CellState = iota
	CellX
	CellO
)

func CellFromCode(code uint64) (CellState, error) {
	switch code {
	case 0:
		return CellEmpty, nil
	case 1:
		return CellX, nil
	case 2:
		return CellO, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %d", ErrUnknownCellState, code)
	}
}

func (that CellState) Mark() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return ""
	}
}

type Status uint8

const (
	StatusAwaitingOpponent Status = 0
	StatusPlayer1Wins      Status = 1
	StatusPlayer2Wins      Status = 2
	StatusDraw             Status = 3
	StatusInProgress       Status = 4
)

type statusInfo struct {
	name     string
	message  string
	terminal bool
}

var statuses = map[Status]statusInfo{
	StatusAwaitingOpponent: {name: "awaiting_opponent", message: "Waiting for players..."},
	StatusPlayer1Wins:      {name: "player1_wins", message: "Player 1 wins! game is over", terminal: true},
	StatusPlayer2Wins:      {name: "player2_wins", message: "Player 2 wins! game is over", terminal: true},
	StatusDraw:             {name: "draw", message: "Draw! game is over", terminal: true},
	StatusInProgress:       {name: "in_progress", message: "Game in progress..."},
}

// StatusFromCode maps the ledger's status integer onto a Status.
func StatusFromCode(code uint64) (Status, error) {
	status := Status(code)
	if _, ok := statuses[status]; !ok || code > uint64(StatusInProgress) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGameStatus, code)
	}

	return status, nil
}

func (that Status) Message() string {
	return statuses[that].message
}

func (that Status) IsTerminal() bool {
	return statuses[that].terminal
}

func (that Status) IsInProgress() bool {
	return that == StatusInProgress
}

func (that Status) String() string {
	if info, ok := statuses[that]; ok {
		return info.name
	}
	return fmt.Sprintf("status(%d)", uint8(that))
}

type Seat uint8

const (
	SeatNone Seat = iota
	SeatOne
	SeatTwo
)

// SeatFromCode maps a seat number; 0 means no seat.
func SeatFromCode(code uint64) (Seat, error) {
	switch code {
	case 0:
		return SeatNone, nil
	case 1:
		return SeatOne, nil
	case 2:
		return SeatTwo, nil
	default:
		return SeatNone, fmt.Errorf("%w: %d", ErrUnknownSeat, code)
	}
}

func (that Seat) Label() string {
	if that == SeatNone {
		return ""
	}
	return fmt.Sprintf("Player %d", uint8(that))
}

type Board [BoardSize][BoardSize]CellState

// Merge overlays the non-empty cells of remote onto the board. Cells never revert to empty.
func (that Board) Merge(remote Board) Board {
	merged := that
	for i := range BoardSize {
		for j := range BoardSize {
			if remote[i][j] != CellEmpty {
				merged[i][j] = remote[i][j]
			}
		}
	}
	return merged
}

func (that Board) At(x, y int) CellState {
	return that[x][y]
}

// CellIndex returns the flat index of (x, y), 3*x + y.
func CellIndex(x, y int) (int, error) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, x, y)
	}
	return BoardSize*x + y, nil
}

func CellPosition(index int) (int, int, error) {
	if index < 0 || index >= BoardSize*BoardSize {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}
	return index / BoardSize, index % BoardSize, nil
}

// GameView is one poll tick's projection of the remote game.
type GameView struct {
	Board      Board
	Status     Status
	StatusCode uint64
	Turn       Seat
}

func (that *GameView) IsTerminal() bool {
	return that.Status.IsTerminal()
}

// TurnMessage is empty unless the game is in progress.
func (that *GameView) TurnMessage(local Seat) string {
	if !that.Status.IsInProgress() {
		return ""
	}

	if that.Turn == local {
		return MessageYourTurn
	}
	return MessageNotYourTurn
}
