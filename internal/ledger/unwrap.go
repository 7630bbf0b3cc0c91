package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

var ErrUnexpectedOutput = errors.New("unexpected contract output")

func unwrapUint(value any) (uint64, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil || !v.IsUint64() {
			return 0, fmt.Errorf("%w: %v does not fit uint64", ErrUnexpectedOutput, v)
		}
		return v.Uint64(), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int8, int16, int32, int64:
		n := reflect.ValueOf(v).Int()
		if n < 0 {
			return 0, fmt.Errorf("%w: negative %d", ErrUnexpectedOutput, n)
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T is not numeric", ErrUnexpectedOutput, value)
	}
}

func unwrapBig(value any) (*big.Int, error) {
	if v, ok := value.(*big.Int); ok && v != nil {
		return new(big.Int).Set(v), nil
	}

	n, err := unwrapUint(value)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(n), nil
}

// unwrapBoard accepts any 3x3 array or slice of numeric cells.
func unwrapBoard(value any) (entity.Board, error) {
	var board entity.Board

	rows, ok := sequence(reflect.ValueOf(value), entity.BoardSize)
	if !ok {
		return board, fmt.Errorf("%w: board is %T", ErrUnexpectedOutput, value)
	}

	for i := range entity.BoardSize {
		row, ok := sequence(rows.Index(i), entity.BoardSize)
		if !ok {
			return board, fmt.Errorf("%w: board row %d is %s", ErrUnexpectedOutput, i, row.Kind())
		}

		for j := range entity.BoardSize {
			code, err := unwrapUint(row.Index(j).Interface())
			if err != nil {
				return board, fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}

			cell, err := entity.CellFromCode(code)
			if err != nil {
				return board, fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}

			board[i][j] = cell
		}
	}

	return board, nil
}

func sequence(value reflect.Value, length int) (reflect.Value, bool) {
	if value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	kind := value.Kind()
	return value, (kind == reflect.Array || kind == reflect.Slice) && value.Len() == length
}

func firstOutput(out []any, method string) (any, error) {
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s returned nothing", ErrUnexpectedOutput, method)
	}
	return out[0], nil
}

// coerce converts a small integer argument into the Go type abi.Pack expects for t.
func coerce(t abi.Type, value int) (any, error) {
	switch t.T {
	case abi.UintTy:
		if value < 0 {
			return nil, fmt.Errorf("negative value %d for %s", value, t.String())
		}
		switch t.Size {
		case 8:
			return uint8(value), nil
		case 16:
			return uint16(value), nil
		case 32:
			return uint32(value), nil
		case 64:
			return uint64(value), nil
		default:
			return big.NewInt(int64(value)), nil
		}
	case abi.IntTy:
		switch t.Size {
		case 8:
			return int8(value), nil
		case 16:
			return int16(value), nil
		case 32:
			return int32(value), nil
		case 64:
			return int64(value), nil
		default:
			return big.NewInt(int64(value)), nil
		}
	default:
		return nil, fmt.Errorf("unsupported argument type %s", t.String())
	}
}
