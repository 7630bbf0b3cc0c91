package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
)

type rpcCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

type chainReader interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client talks to the ledger node. Transactions are sent unsigned through
// eth_sendTransaction so the node's wallet signs them.
type Client struct {
	rpc      rpcCaller
	chain    chainReader
	artifact *Artifact
	gasLimit uint64

	closer func()
}

type transactionArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to,omitempty"`
	Gas   hexutil.Uint64  `json:"gas"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Data  hexutil.Bytes   `json:"data"`
}

func Dial(ctx context.Context, url string, artifact *Artifact, gasLimit uint64) (*Client, error) {
	conn, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger %s: %w", url, err)
	}

	client := New(conn, ethclient.NewClient(conn), artifact, gasLimit)
	client.closer = conn.Close

	return client, nil
}

func New(caller rpcCaller, chain chainReader, artifact *Artifact, gasLimit uint64) *Client {
	return &Client{
		rpc:      caller,
		chain:    chain,
		artifact: artifact,
		gasLimit: gasLimit,
	}
}

func (that *Client) Close() {
	if that.closer != nil {
		that.closer()
	}
}

// Attach binds a handle to an already deployed instance. No remote call is made.
func (that *Client) Attach(address common.Address) session.GameHandle {
	return &Contract{client: that, address: address}
}

// Deploy submits the creation of a new game against opponent, escrowing the given amount.
func (that *Client) Deploy(ctx context.Context, from, opponent common.Address, escrow *big.Int) (common.Hash, error) {
	input, err := that.artifact.ABI.Pack("", opponent)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack constructor: %w", err)
	}

	data := make([]byte, 0, len(that.artifact.Bytecode)+len(input))
	data = append(data, that.artifact.Bytecode...)
	data = append(data, input...)

	return that.sendTransaction(ctx, from, nil, escrow, data)
}

// Receipt returns nil without error while the transaction is still pending.
func (that *Client) Receipt(ctx context.Context, hash common.Hash) (*entity.Receipt, error) {
	receipt, err := that.chain.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, classify(err)
	}

	result := &entity.Receipt{
		TxHash:          receipt.TxHash,
		Success:         receipt.Status == types.ReceiptStatusSuccessful,
		ContractAddress: receipt.ContractAddress,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	return result, nil
}

func (that *Client) call(ctx context.Context, from, to common.Address, method string, args ...any) ([]any, error) {
	data, err := that.artifact.ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := that.chain.CallContract(ctx, ethereum.CallMsg{From: from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, classify(err))
	}

	values, err := that.artifact.ABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return values, nil
}

func (that *Client) transact(ctx context.Context, from, to common.Address, value *big.Int, method string, args ...any) (common.Hash, error) {
	data, err := that.artifact.ABI.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	hash, err := that.sendTransaction(ctx, from, &to, value, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send %s: %w", method, err)
	}

	return hash, nil
}

func (that *Client) sendTransaction(ctx context.Context, from common.Address, to *common.Address, value *big.Int, data []byte) (common.Hash, error) {
	args := transactionArgs{
		From: from,
		To:   to,
		Gas:  hexutil.Uint64(that.gasLimit),
		Data: data,
	}
	if value != nil && value.Sign() > 0 {
		args.Value = (*hexutil.Big)(value)
	}

	var hash common.Hash
	if err := that.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, classify(err)
	}

	return hash, nil
}

// coords packs (x, y) according to the declared input types of method.
func (that *Client) coords(method string, x, y int) ([]any, error) {
	abiMethod, ok := that.artifact.ABI.Methods[method]
	if !ok || len(abiMethod.Inputs) != 2 {
		return nil, fmt.Errorf("%w: %s does not take two coordinates", ErrInvalidArtifact, method)
	}

	args := make([]any, 0, 2)
	for i, value := range []int{x, y} {
		arg, err := coerce(abiMethod.Inputs[i].Type, value)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", method, i, err)
		}
		args = append(args, arg)
	}

	return args, nil
}
