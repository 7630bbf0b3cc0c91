package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/screen"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

const (
	messageTryAgain = "Try Again..."

	newGameTemplate   = "BET AMOUNT OF %s PLACED. Share the contract address with your opponent: %s"
	joinPromptFormat  = "Bet Amount of %s required to join game."
	joinedGameMessage = "Game of %s ETH stakes joined."
)

type ledgerDep interface {
	Deploy(ctx context.Context, from, opponent common.Address, escrow *big.Int) (common.Hash, error)
	Attach(address common.Address) session.GameHandle
}

type watcherDep interface {
	Watch(ctx context.Context, hash common.Hash) (*entity.Receipt, error)
}

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, record *entity.SessionRecord) error
	GetByID(ctx context.Context, account string) (*entity.SessionRecord, error)
	DeleteByID(ctx context.Context, account string) error
}

type sessionView interface {
	SetNewGame(text, address string)
	SetJoinPrompt(text string, confirm bool)
	SetPlayer(seat entity.Seat)
	SetMessage(message string)
	SetInputError(control, message string)
	ClearInputErrors(controls ...string)
}

// Session drives game creation and joining, and owns the lifecycle of the session context.
type Session struct {
	logger  *slog.Logger
	session *session.Context
	ledger  ledgerDep
	watcher watcherDep
	repo    sessionRepoDep
	view    sessionView

	// guards one create or join handshake at a time
	mu sync.Mutex
}

func NewSession(
	logger *slog.Logger,
	sess *session.Context,
	ledger ledgerDep,
	watcher watcherDep,
	repo sessionRepoDep,
	view sessionView,
) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		session: sess,
		ledger:  ledger,
		watcher: watcher,
		repo:    repo,
		view:    view,
	}
}

// CreateGame deploys a new game against the opponent, escrowing the amount, and takes seat one
// once the deployment receipt is observed.
func (that *Session) CreateGame(ctx context.Context, opponentInput, amountInput string) (common.Address, error) {
	log := that.logger.With("method", "CreateGame")

	if !that.mu.TryLock() {
		log.Warn("handshake already in progress, create ignored")
		return common.Address{}, fmt.Errorf("%w: handshake in progress", apperror.ErrSessionAlreadyBound)
	}
	defer that.mu.Unlock()

	// a join that was never confirmed does not hold the session
	that.session.Detach()

	if handle, ok := that.session.Handle(); ok {
		log.Warn("there is an existing game already", "address", handle.Address().Hex())
		return common.Address{}, fmt.Errorf("%w: %s", apperror.ErrSessionAlreadyBound, handle.Address().Hex())
	}

	opponent, escrow, err := that.parseCreateInput(opponentInput, amountInput)
	if err != nil {
		return common.Address{}, err
	}

	hash, err := that.ledger.Deploy(ctx, that.session.Account(), opponent, escrow)
	if err != nil {
		log.Error("failed to deploy game", "error", err)
		that.view.SetMessage("Game could not be created")
		return common.Address{}, fmt.Errorf("failed to deploy game: %w", err)
	}

	log.Info("game deployment submitted", "tx", hash.Hex())

	receipt, err := that.watcher.Watch(ctx, hash)
	if err != nil {
		log.Error("failed to observe deployment", "tx", hash.Hex(), "error", err)
		return common.Address{}, fmt.Errorf("failed to watch deployment: %w", err)
	}

	if !receipt.Success || receipt.ContractAddress == (common.Address{}) {
		log.Error("deployment reverted", "tx", hash.Hex())
		that.view.SetMessage("Game could not be created")
		return common.Address{}, fmt.Errorf("%w: deployment %s reverted", apperror.ErrRemoteRejected, hash.Hex())
	}

	address := receipt.ContractAddress
	if err = that.session.Attach(that.ledger.Attach(address)); err != nil {
		return common.Address{}, fmt.Errorf("failed to bind game: %w", err)
	}

	that.session.SetBetAmount(escrow)
	if err = that.session.AssignSeat(entity.SeatOne); err != nil {
		return common.Address{}, fmt.Errorf("failed to assign seat: %w", err)
	}

	that.view.SetNewGame(fmt.Sprintf(newGameTemplate, entity.FormatEther(escrow), address.Hex()), address.Hex())
	that.view.SetPlayer(entity.SeatOne)

	log.Info("game created", "address", address.Hex(), "seat", entity.SeatOne.Label())

	that.persist(ctx)

	return address, nil
}

// JoinGame binds the game at addressInput and displays the escrow required to join it.
// The returned amount must be confirmed through ConfirmJoin. An unconfirmed binding is replaced.
func (that *Session) JoinGame(ctx context.Context, addressInput string) (*big.Int, error) {
	log := that.logger.With("method", "JoinGame")

	if !that.mu.TryLock() {
		log.Warn("handshake already in progress, join ignored")
		return nil, fmt.Errorf("%w: handshake in progress", apperror.ErrSessionAlreadyBound)
	}
	defer that.mu.Unlock()

	that.view.ClearInputErrors(screen.ControlJoinAddress)

	input := strings.TrimSpace(addressInput)
	if !common.IsHexAddress(input) {
		that.view.SetInputError(screen.ControlJoinAddress, "Invalid contract address")
		return nil, fmt.Errorf("%w: contract address %q", apperror.ErrInvalidUserInput, addressInput)
	}

	that.session.Detach()

	if err := that.session.Attach(that.ledger.Attach(common.HexToAddress(input))); err != nil {
		log.Warn("there is an existing game already", "error", err)
		return nil, fmt.Errorf("failed to bind game: %w", err)
	}

	handle, _ := that.session.Handle()

	bet, err := handle.BetAmount(ctx)
	if err != nil {
		log.Error("failed to read bet amount", "address", input, "error", err)
		that.session.Detach()
		that.view.SetJoinPrompt(messageTryAgain, false)
		return nil, fmt.Errorf("failed to read bet amount: %w", err)
	}

	if bet == nil || bet.Sign() == 0 {
		log.Info("game has no bet amount", "address", input)
		that.session.Detach()
		that.view.SetJoinPrompt(messageTryAgain, false)
		return nil, apperror.ErrZeroBetAmount
	}

	that.session.SetBetAmount(bet)
	that.view.SetJoinPrompt(fmt.Sprintf(joinPromptFormat, entity.FormatEther(bet)), true)

	return bet, nil
}

// ConfirmJoin joins the bound game with the displayed escrow and takes seat two.
func (that *Session) ConfirmJoin(ctx context.Context) error {
	log := that.logger.With("method", "ConfirmJoin")

	if !that.mu.TryLock() {
		return fmt.Errorf("%w: handshake in progress", apperror.ErrSessionAlreadyBound)
	}
	defer that.mu.Unlock()

	handle, ok := that.session.Handle()
	if !ok {
		return apperror.ErrNoSession
	}

	if that.session.Seat() != entity.SeatNone {
		return fmt.Errorf("%w: seat already assigned", apperror.ErrSessionAlreadyBound)
	}

	bet := that.session.BetAmount()
	if bet == nil || bet.Sign() == 0 {
		return apperror.ErrZeroBetAmount
	}

	hash, err := handle.Join(ctx, bet)
	if err != nil {
		log.Error("failed to join game", "address", handle.Address().Hex(), "error", err)
		that.view.SetMessage("Game could not be joined")
		return fmt.Errorf("failed to join game: %w", err)
	}

	receipt, err := that.watcher.Watch(ctx, hash)
	if err != nil {
		log.Error("failed to observe join", "tx", hash.Hex(), "error", err)
		return fmt.Errorf("failed to watch join: %w", err)
	}

	if !receipt.Success {
		log.Error("join reverted", "tx", hash.Hex())
		that.view.SetMessage("Game could not be joined")
		return fmt.Errorf("%w: join %s reverted", apperror.ErrRemoteRejected, hash.Hex())
	}

	if err = that.session.AssignSeat(entity.SeatTwo); err != nil {
		return fmt.Errorf("failed to assign seat: %w", err)
	}

	that.view.SetPlayer(entity.SeatTwo)
	that.view.SetJoinPrompt(fmt.Sprintf(joinedGameMessage, entity.FormatEther(bet)), false)

	log.Info("game joined", "address", handle.Address().Hex(), "seat", entity.SeatTwo.Label())

	that.persist(ctx)

	return nil
}

// SwitchAccount rebuilds the bound handle for a new sender. The local seat is not re-checked.
func (that *Session) SwitchAccount(ctx context.Context, account common.Address) {
	log := that.logger.With("method", "SwitchAccount")

	previous := that.session.Account()
	if previous == account {
		return
	}

	that.session.SetAccount(account)
	log.Info("account changed", "from", previous.Hex(), "to", account.Hex())

	if _, ok := that.session.Handle(); ok && that.session.Seat() != entity.SeatNone {
		log.Warn("account changed with a seated game; seat is kept", "seat", that.session.Seat().Label())
		that.persist(ctx)

		if err := that.repo.DeleteByID(ctx, previous.Hex()); err != nil {
			log.Error("failed to delete session record", "account", previous.Hex(), "error", err)
		}
	}
}

// Resume restores a persisted session of the current account. It reports whether one was found.
func (that *Session) Resume(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "Resume")

	account := that.session.Account()

	record, err := that.repo.GetByID(ctx, account.Hex())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get session record: %w", err)
	}

	seat, err := entity.SeatFromCode(uint64(record.Seat))
	if err != nil || seat == entity.SeatNone || !common.IsHexAddress(record.ContractAddress) {
		log.Warn("dropping malformed session record", "account", account.Hex())
		if err = that.repo.DeleteByID(ctx, account.Hex()); err != nil {
			return false, fmt.Errorf("failed to delete session record: %w", err)
		}
		return false, nil
	}

	bet, ok := new(big.Int).SetString(record.BetAmount, 10)
	if !ok {
		bet = new(big.Int)
	}

	address := common.HexToAddress(record.ContractAddress)
	if err = that.session.Attach(that.ledger.Attach(address)); err != nil {
		return false, fmt.Errorf("failed to bind game: %w", err)
	}

	that.session.SetBetAmount(bet)
	if err = that.session.AssignSeat(seat); err != nil {
		return false, fmt.Errorf("failed to assign seat: %w", err)
	}

	that.view.SetPlayer(seat)
	if seat == entity.SeatOne {
		that.view.SetNewGame(fmt.Sprintf(newGameTemplate, entity.FormatEther(bet), address.Hex()), address.Hex())
	} else {
		that.view.SetJoinPrompt(fmt.Sprintf(joinedGameMessage, entity.FormatEther(bet)), false)
	}

	log.Info("session resumed", "address", address.Hex(), "seat", seat.Label())

	return true, nil
}

// Teardown drops the persisted record and closes the session once the game is over.
func (that *Session) Teardown(ctx context.Context, _ *entity.GameView) {
	log := that.logger.With("method", "Teardown")

	if that.session.Seat() == entity.SeatNone {
		log.Debug("no seat taken, nothing to tear down")
		return
	}

	if err := that.repo.DeleteByID(ctx, that.session.Account().Hex()); err != nil {
		log.Error("failed to delete session record", "error", err)
	}

	that.session.Close()
	log.Info("session closed")
}

func (that *Session) parseCreateInput(opponentInput, amountInput string) (common.Address, *big.Int, error) {
	that.view.ClearInputErrors(screen.ControlOpponentAddress, screen.ControlBetAmount)

	var invalid []string

	opponent := strings.TrimSpace(opponentInput)
	if !common.IsHexAddress(opponent) {
		that.view.SetInputError(screen.ControlOpponentAddress, "Invalid opponent address")
		invalid = append(invalid, "opponent address")
	}

	escrow, err := entity.ParseEther(strings.TrimSpace(amountInput))
	if err != nil || escrow.Sign() <= 0 {
		that.view.SetInputError(screen.ControlBetAmount, "Bet amount must be a positive ETH value")
		invalid = append(invalid, "bet amount")
	}

	if len(invalid) > 0 {
		return common.Address{}, nil, fmt.Errorf("%w: %s", apperror.ErrInvalidUserInput, strings.Join(invalid, ", "))
	}

	return common.HexToAddress(opponent), escrow, nil
}

func (that *Session) persist(ctx context.Context) {
	record, ok := that.session.Record()
	if !ok {
		return
	}

	if err := that.repo.CreateOrUpdate(ctx, record); err != nil {
		that.logger.Error("failed to persist session", "account", record.Account, "error", err)
	}
}
