package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	methodShowBoard = "showBoard"
	methodStatus    = "status"
	methodTurn      = "turn"
	methodBetAmount = "betAmount"
	methodValidMove = "validMove"
	methodMove      = "move"
	methodJoin      = "join"
)

var (
	ErrInvalidArtifact = errors.New("invalid contract artifact")

	requiredMethods = []string{
		methodShowBoard, methodStatus, methodTurn, methodBetAmount,
		methodValidMove, methodMove, methodJoin,
	}
)

// Artifact is the build output describing the game contract.
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

type artifactFile struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

// LoadArtifact reads the artifact from an http(s) URL or a local path.
func LoadArtifact(ctx context.Context, location string) (*Artifact, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = fetch(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", location, err)
	}

	return ParseArtifact(data)
}

func ParseArtifact(data []byte) (*Artifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("%w: abi: %w", ErrInvalidArtifact, err)
	}

	for _, name := range requiredMethods {
		if _, ok := parsed.Methods[name]; !ok {
			return nil, fmt.Errorf("%w: missing method %s", ErrInvalidArtifact, name)
		}
	}

	bytecode := file.Bytecode
	if !strings.HasPrefix(bytecode, "0x") {
		bytecode = "0x" + bytecode
	}

	code, err := hexutil.Decode(bytecode)
	if err != nil {
		return nil, fmt.Errorf("%w: bytecode: %w", ErrInvalidArtifact, err)
	}

	return &Artifact{ABI: parsed, Bytecode: code}, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
