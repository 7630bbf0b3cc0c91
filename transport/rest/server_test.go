package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/screen"
)

func newTestMux(view *screen.Screen) *http.ServeMux {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return NewMux(NewHandlers(logger, view))
}

func TestMux(t *testing.T) {
	t.Run("Ping answers pong", func(t *testing.T) {
		// Given: The REST mux
		mux := newTestMux(screen.New())
		recorder := httptest.NewRecorder()

		// When: Calling /ping
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		// Then: pong is returned
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "pong", recorder.Body.String())
	})

	t.Run("State returns the current snapshot", func(t *testing.T) {
		// Given: A view showing a draw
		view := screen.New()
		view.SetStatus(entity.StatusDraw, 3)
		view.DisableInput()
		mux := newTestMux(view)
		recorder := httptest.NewRecorder()

		// When: Calling /state
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/state", nil))

		// Then: The snapshot is encoded as JSON
		require.Equal(t, http.StatusOK, recorder.Code)

		var snapshot screen.Snapshot
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&snapshot))
		assert.Equal(t, "Status: 3", snapshot.Status)
		assert.Equal(t, "Draw! game is over", snapshot.Message)
		assert.True(t, snapshot.GameOver)
	})
}
