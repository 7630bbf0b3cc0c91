package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	actionNewGame = "game:new"
	actionJoin    = "game:join"
	actionConfirm = "game:confirm"
	actionTurn    = "game:turn"
	actionState   = "game:state"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NewGamePayload struct {
	Opponent string `json:"opponent"`
	Amount   string `json:"amount"`
}

type JoinPayload struct {
	Address string `json:"address"`
}

// TurnPayload selects a cell either by coordinates or by its index on the board.
type TurnPayload struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Cell *int `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Address   string `json:"address,omitempty"`
	BetAmount string `json:"bet_amount,omitempty"`
	TxHash    string `json:"tx_hash,omitempty"`
	Action    string `json:"action,omitempty"`
	Error     string `json:"error,omitempty"`
}

// connection serializes writes: gorilla connections allow one concurrent writer.
type connection struct {
	id   string
	conn *websocket.Conn

	mu sync.Mutex
}

func (that *connection) send(action string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
