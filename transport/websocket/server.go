package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/screen"
)

const shutdownTimeout = 5 * time.Second

type uSession interface {
	CreateGame(ctx context.Context, opponentInput, amountInput string) (common.Address, error)
	JoinGame(ctx context.Context, addressInput string) (*big.Int, error)
	ConfirmJoin(ctx context.Context) error
}

type uGame interface {
	SelectCell(ctx context.Context, x, y int) (common.Hash, error)
}

type stateSource interface {
	Subscribe() (<-chan screen.Snapshot, func())
}

type handler func(ctx context.Context, message *Message, conn *connection) error

type Server struct {
	logger   *slog.Logger
	uSession uSession
	uGame    uGame
	state    stateSource

	upgrader websocket.Upgrader
	handlers map[string]handler
}

func New(logger *slog.Logger, uSession uSession, uGame uGame, state stateSource) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		uSession: uSession,
		uGame:    uGame,
		state:    state,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handler),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionJoin] = server.handleJoinGame
	server.handlers[actionConfirm] = server.handleConfirmJoin
	server.handlers[actionTurn] = server.handleGameTurn

	return server
}

// Handler returns the /ws endpoint. Actions run under ctx, not under the connection's lifetime.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	wsConn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{id: uuid.NewString(), conn: wsConn}
	log = log.With("connection", conn.id)

	defer func() {
		if err := wsConn.Close(); err != nil {
			log.Debug("failed to close connection", "error", err)
		}
	}()

	log.Info("WebSocket connection established")

	updates, unsubscribe := that.state.Subscribe()
	defer unsubscribe()

	go that.pushState(conn, updates)

	that.handleMessages(ctx, conn)

	log.Info("WebSocket connection closed")
}

// pushState forwards every view change until the subscription is closed.
func (that *Server) pushState(conn *connection, updates <-chan screen.Snapshot) {
	for snapshot := range updates {
		if err := conn.send(actionState, snapshot); err != nil {
			that.logger.Debug("failed to push state", "connection", conn.id, "error", err)
		}
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages", "connection", conn.id)

	for {
		_, body, err := conn.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(conn, "", "malformed message")
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(conn, message.Action, "unknown action")
			continue
		}

		if err = handle(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendError(conn *connection, action, text string) {
	if err := conn.send(actionError, ResponsePayload{Action: action, Error: text}); err != nil {
		that.logger.Debug("failed to send error", "connection", conn.id, "error", err)
	}
}
