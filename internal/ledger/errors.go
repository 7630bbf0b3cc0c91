package ledger

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

// classify maps a transport error onto the client's taxonomy: a JSON-RPC error
// object means the service answered and refused, anything else means it was not reached.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %w", apperror.ErrRemoteRejected, err)
	}

	return fmt.Errorf("%w: %w", apperror.ErrRemoteUnavailable, err)
}
