package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/poller"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/reconciler"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/screen"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/watcher"
	"github.com/rocketscienceinc/tictactoe-ledger-client/transport/rest"
	"github.com/rocketscienceinc/tictactoe-ledger-client/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	artifact, err := ledger.LoadArtifact(ctx, conf.Ledger.Artifact)
	if err != nil {
		return fmt.Errorf("could not load contract artifact: %w", err)
	}

	ledgerClient, err := ledger.Dial(ctx, conf.Ledger.RPCURL, artifact, conf.Ledger.GasLimit)
	if err != nil {
		return fmt.Errorf("could not connect to ledger: %w", err)
	}
	defer ledgerClient.Close()

	wallet := ledger.NewWallet(logger, ledgerClient)

	account, err := wallet.Primary(ctx)
	if err != nil {
		return fmt.Errorf("could not get wallet account: %w", err)
	}

	log.Info("using account", "account", account.Hex())

	sess := session.New(account)
	view := screen.New()
	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)

	receiptWatcher := watcher.New(logger, ledgerClient, watcher.Policy{
		Interval:    conf.Watcher.Interval,
		MaxInterval: conf.Watcher.MaxInterval,
		MaxAttempts: conf.Watcher.MaxAttempts,
	})

	scheduler := poller.New(logger, sess, reconciler.New(logger, view), view, poller.Policy{
		Interval:       conf.Polling.Interval,
		MaxInterval:    conf.Polling.MaxInterval,
		MaxFailures:    conf.Polling.MaxFailures,
		StopOnTerminal: conf.Polling.StopOnTerminal,
	})

	sessionUseCase := usecase.NewSession(logger, sess, ledgerClient, receiptWatcher, sessionRepo, view)
	gameUseCase := usecase.NewGame(logger, sess, receiptWatcher, view, scheduler)
	defer gameUseCase.Wait()

	scheduler.OnTerminal(func(ctx context.Context, gameView *entity.GameView) {
		log.Info("game finished", "status", gameView.Status.String())
		sessionUseCase.Teardown(ctx, gameView)
	})

	if conf.Session.Resume {
		resumed, err := sessionUseCase.Resume(ctx)
		if err != nil {
			log.Error("could not resume session", "error", err)
		} else if resumed {
			log.Info("session resumed")
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := scheduler.Run(groupCtx); err != nil {
			return fmt.Errorf("poller error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		for changed := range wallet.Watch(groupCtx, conf.Wallet.PollInterval, account) {
			sessionUseCase.SwitchAccount(groupCtx, changed)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.Start(groupCtx, conf.HTTPPort, rest.NewHandlers(logger, view)); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, sessionUseCase, gameUseCase, view)
		if err := wsServer.Start(groupCtx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
