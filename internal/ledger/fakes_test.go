package ledger

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

type jsonRPCError struct {
	code    int
	message string
}

func (that *jsonRPCError) Error() string  { return that.message }
func (that *jsonRPCError) ErrorCode() int { return that.code }

type rpcCall struct {
	method string
	args   []any
}

type fakeRPC struct {
	mu      sync.Mutex
	calls   []rpcCall
	results map[string]any
	errs    map[string]error
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{results: map[string]any{}, errs: map[string]error{}}
}

func (that *fakeRPC) CallContext(_ context.Context, result any, method string, args ...any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.calls = append(that.calls, rpcCall{method: method, args: args})

	if err := that.errs[method]; err != nil {
		return err
	}

	value, ok := that.results[method]
	if !ok {
		return fmt.Errorf("unexpected method %s", method)
	}

	reflect.ValueOf(result).Elem().Set(reflect.ValueOf(value))

	return nil
}

func (that *fakeRPC) last() rpcCall {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.calls[len(that.calls)-1]
}

type fakeChain struct {
	outputs  map[string][]byte
	err      error
	calls    []ethereum.CallMsg
	receipts map[common.Hash]*types.Receipt
}

func (that *fakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	that.calls = append(that.calls, msg)

	if that.err != nil {
		return nil, that.err
	}

	out, ok := that.outputs[string(msg.Data[:4])]
	if !ok {
		return nil, fmt.Errorf("no output for selector %x", msg.Data[:4])
	}

	return out, nil
}

func (that *fakeChain) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	if that.err != nil {
		return nil, that.err
	}

	receipt, ok := that.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

func loadTestArtifact(t *testing.T) *Artifact {
	t.Helper()

	data, err := os.ReadFile("testdata/TicTacToe.json")
	require.NoError(t, err)

	artifact, err := ParseArtifact(data)
	require.NoError(t, err)

	return artifact
}

// setOutput registers the ABI-encoded return values of method.
func setOutput(t *testing.T, artifact *Artifact, chain *fakeChain, method string, values ...any) {
	t.Helper()

	abiMethod := artifact.ABI.Methods[method]
	out, err := abiMethod.Outputs.Pack(values...)
	require.NoError(t, err)

	if chain.outputs == nil {
		chain.outputs = map[string][]byte{}
	}
	chain.outputs[string(abiMethod.ID)] = out
}
