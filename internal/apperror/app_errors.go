package apperror

import "errors"

var (
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	ErrRemoteRejected    = errors.New("remote service rejected the call")
	ErrInvalidUserInput  = errors.New("invalid user input")
	ErrProtocolRace      = errors.New("move precondition changed between checks")

	ErrGameFinished        = errors.New("game is already finished")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrInvalidMove         = errors.New("move is not valid")
	ErrCellLocked          = errors.New("cell is not selectable")
	ErrNoSession           = errors.New("no game session bound")
	ErrSessionAlreadyBound = errors.New("game session already bound")
	ErrZeroBetAmount       = errors.New("bet amount is zero")
	ErrWatchExhausted      = errors.New("transaction receipt not observed")
	ErrNoAccounts          = errors.New("wallet returned no accounts")
	ErrNotFound            = errors.New("not found")
)

// IsSilent reports whether err is a dropped-move outcome that must not reach the user.
func IsSilent(err error) bool {
	return errors.Is(err, ErrInvalidMove) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrProtocolRace) ||
		errors.Is(err, ErrCellLocked)
}
