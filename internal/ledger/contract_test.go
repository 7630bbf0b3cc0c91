package ledger

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

var (
	gameAddress = common.HexToAddress("0x00000000000000000000000000000000000abc")
	senderOne   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	opponent    = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestParseArtifact(t *testing.T) {
	t.Run("Parses abi and bytecode", func(t *testing.T) {
		// When: loading the test artifact
		artifact := loadTestArtifact(t)

		// Then: every method the client uses is present
		for _, name := range requiredMethods {
			assert.Contains(t, artifact.ABI.Methods, name)
		}
		assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, artifact.Bytecode)
	})

	t.Run("Rejects an abi missing a game method", func(t *testing.T) {
		// Given: an artifact without the move method
		data := []byte(`{"abi":[{"type":"function","name":"status","inputs":[],"outputs":[{"name":"","type":"uint256"}]}],"bytecode":"0x00"}`)

		// When: parsing it
		_, err := ParseArtifact(data)

		// Then: it is refused
		require.ErrorIs(t, err, ErrInvalidArtifact)
	})

	t.Run("Loads from a local path", func(t *testing.T) {
		_, err := LoadArtifact(context.Background(), "testdata/TicTacToe.json")
		require.NoError(t, err)
	})
}

func TestContract_Reads(t *testing.T) {
	artifact := loadTestArtifact(t)

	t.Run("Board decodes the nested numeric grid", func(t *testing.T) {
		// Given: the contract reports X in the corner and O in the center
		chain := &fakeChain{}
		setOutput(t, artifact, chain, methodShowBoard, [3][3]uint8{{1, 0, 0}, {0, 2, 0}, {0, 0, 0}})
		contract := New(newFakeRPC(), chain, artifact, 3000000).Attach(gameAddress)

		// When: reading the board
		board, err := contract.Board(context.Background())

		// Then: cells map 1->X and 2->O
		require.NoError(t, err)
		assert.Equal(t, entity.CellX, board.At(0, 0))
		assert.Equal(t, entity.CellO, board.At(1, 1))
		assert.Equal(t, entity.CellEmpty, board.At(2, 2))
		assert.Equal(t, gameAddress, *chain.calls[0].To)
	})

	t.Run("Status, turn and bet amount unwrap to plain integers", func(t *testing.T) {
		// Given: status 4, turn 2 and a half ether bet
		chain := &fakeChain{}
		bet, _ := new(big.Int).SetString("500000000000000000", 10)
		setOutput(t, artifact, chain, methodStatus, big.NewInt(4))
		setOutput(t, artifact, chain, methodTurn, uint8(2))
		setOutput(t, artifact, chain, methodBetAmount, bet)
		contract := New(newFakeRPC(), chain, artifact, 3000000).Attach(gameAddress)

		// When: reading each value
		status, err := contract.Status(context.Background())
		require.NoError(t, err)
		turn, err := contract.Turn(context.Background())
		require.NoError(t, err)
		amount, err := contract.BetAmount(context.Background())
		require.NoError(t, err)

		// Then: the values are unwrapped
		assert.Equal(t, uint64(4), status)
		assert.Equal(t, entity.SeatTwo, turn)
		assert.Equal(t, "0.5", entity.FormatEther(amount))
	})

	t.Run("IsValidMove packs coordinates with the declared types", func(t *testing.T) {
		// Given: a contract that accepts the move
		chain := &fakeChain{}
		setOutput(t, artifact, chain, methodValidMove, true)
		contract := New(newFakeRPC(), chain, artifact, 3000000).Attach(gameAddress).WithSender(senderOne)

		// When: checking (1, 2)
		valid, err := contract.IsValidMove(context.Background(), 1, 2)

		// Then: the call carries uint8 arguments and the sender
		require.NoError(t, err)
		assert.True(t, valid)

		expected, err := artifact.ABI.Pack(methodValidMove, uint8(1), uint8(2))
		require.NoError(t, err)
		assert.Equal(t, expected, chain.calls[0].Data)
		assert.Equal(t, senderOne, chain.calls[0].From)
	})

	t.Run("Transport failures are RemoteUnavailable", func(t *testing.T) {
		// Given: a node that cannot be reached
		chain := &fakeChain{err: errors.New("connection refused")}
		contract := New(newFakeRPC(), chain, artifact, 3000000).Attach(gameAddress)

		// When: reading the status
		_, err := contract.Status(context.Background())

		// Then: the error is classified
		require.ErrorIs(t, err, apperror.ErrRemoteUnavailable)
	})

	t.Run("JSON-RPC errors are RemoteRejected", func(t *testing.T) {
		// Given: a node that answers with an execution error
		chain := &fakeChain{err: &jsonRPCError{code: 3, message: "execution reverted"}}
		contract := New(newFakeRPC(), chain, artifact, 3000000).Attach(gameAddress)

		// When: reading the board
		_, err := contract.Board(context.Background())

		// Then: the error is classified
		require.ErrorIs(t, err, apperror.ErrRemoteRejected)
	})
}

func TestContract_Writes(t *testing.T) {
	artifact := loadTestArtifact(t)
	txHash := common.HexToHash("0xfeed")

	t.Run("SubmitMove sends an unsigned transaction to the game", func(t *testing.T) {
		// Given: a node that accepts transactions
		caller := newFakeRPC()
		caller.results["eth_sendTransaction"] = txHash
		contract := New(caller, &fakeChain{}, artifact, 3000000).Attach(gameAddress).WithSender(senderOne)

		// When: submitting (0, 2)
		hash, err := contract.SubmitMove(context.Background(), 0, 2)

		// Then: the transaction targets the game with the packed move
		require.NoError(t, err)
		assert.Equal(t, txHash, hash)

		args, ok := caller.last().args[0].(transactionArgs)
		require.True(t, ok)
		expected, err := artifact.ABI.Pack(methodMove, uint8(0), uint8(2))
		require.NoError(t, err)
		assert.Equal(t, senderOne, args.From)
		assert.Equal(t, gameAddress, *args.To)
		assert.Equal(t, hexutil.Bytes(expected), args.Data)
		assert.Equal(t, hexutil.Uint64(3000000), args.Gas)
		assert.Nil(t, args.Value)
	})

	t.Run("Join carries the escrow", func(t *testing.T) {
		caller := newFakeRPC()
		caller.results["eth_sendTransaction"] = txHash
		contract := New(caller, &fakeChain{}, artifact, 3000000).Attach(gameAddress).WithSender(senderOne)

		_, err := contract.Join(context.Background(), big.NewInt(42))
		require.NoError(t, err)

		args := caller.last().args[0].(transactionArgs)
		assert.Equal(t, "42", args.Value.ToInt().String())
	})

	t.Run("A refused submission is RemoteRejected", func(t *testing.T) {
		caller := newFakeRPC()
		caller.errs["eth_sendTransaction"] = &jsonRPCError{code: -32000, message: "insufficient funds"}
		contract := New(caller, &fakeChain{}, artifact, 3000000).Attach(gameAddress)

		_, err := contract.SubmitMove(context.Background(), 0, 0)

		require.ErrorIs(t, err, apperror.ErrRemoteRejected)
	})
}

func TestClient_Deploy(t *testing.T) {
	t.Run("Sends bytecode plus constructor arguments without a recipient", func(t *testing.T) {
		// Given: a node that accepts transactions
		artifact := loadTestArtifact(t)
		caller := newFakeRPC()
		caller.results["eth_sendTransaction"] = common.HexToHash("0x01")
		client := New(caller, &fakeChain{}, artifact, 3000000)

		// When: deploying against an opponent with an escrow
		_, err := client.Deploy(context.Background(), senderOne, opponent, big.NewInt(7))

		// Then: the payload is the creation code followed by the encoded opponent
		require.NoError(t, err)
		args := caller.last().args[0].(transactionArgs)
		constructorArgs, err := artifact.ABI.Pack("", opponent)
		require.NoError(t, err)

		assert.Nil(t, args.To)
		assert.Equal(t, hexutil.Bytes(append(append([]byte{}, artifact.Bytecode...), constructorArgs...)), args.Data)
		assert.Equal(t, "7", args.Value.ToInt().String())
	})
}

func TestClient_Receipt(t *testing.T) {
	artifact := loadTestArtifact(t)
	hash := common.HexToHash("0xabc")

	t.Run("Returns nil while pending", func(t *testing.T) {
		client := New(newFakeRPC(), &fakeChain{}, artifact, 3000000)

		receipt, err := client.Receipt(context.Background(), hash)

		require.NoError(t, err)
		assert.Nil(t, receipt)
	})

	t.Run("Maps a mined creation receipt", func(t *testing.T) {
		// Given: a successful contract creation receipt
		chain := &fakeChain{receipts: map[common.Hash]*types.Receipt{
			hash: {
				TxHash:          hash,
				Status:          types.ReceiptStatusSuccessful,
				ContractAddress: gameAddress,
				BlockNumber:     big.NewInt(12),
			},
		}}
		client := New(newFakeRPC(), chain, artifact, 3000000)

		// When: looking it up
		receipt, err := client.Receipt(context.Background(), hash)

		// Then: the new instance address is extracted
		require.NoError(t, err)
		assert.True(t, receipt.Success)
		assert.Equal(t, gameAddress, receipt.ContractAddress)
		assert.Equal(t, uint64(12), receipt.BlockNumber)
	})
}
