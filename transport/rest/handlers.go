package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/screen"
)

type stateSource interface {
	Snapshot() screen.Snapshot
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StateHandler(w http.ResponseWriter, _ *http.Request)
}

type handlers struct {
	logger *slog.Logger
	state  stateSource
}

func NewHandlers(logger *slog.Logger, state stateSource) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		state:  state,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StateHandler returns the snapshot the websocket clients render.
func (that *handlers) StateHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(that.state.Snapshot()); err != nil {
		that.logger.Error("failed to encode state", "error", err)
	}
}
