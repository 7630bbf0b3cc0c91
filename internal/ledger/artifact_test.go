package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("Fetches the artifact over http", func(t *testing.T) {
		// Given: a server publishing the build artifact
		data, err := os.ReadFile("testdata/TicTacToe.json")
		require.NoError(t, err)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(data)
		}))
		defer server.Close()

		// When: loading it by URL
		artifact, err := LoadArtifact(ctx, server.URL+"/artifacts/contracts/TicTacToe.sol/TicTacToe.json")

		// Then: the abi is available
		require.NoError(t, err)
		assert.Contains(t, artifact.ABI.Methods, methodShowBoard)
	})

	t.Run("Fails on a missing artifact", func(t *testing.T) {
		// Given: a server without the artifact
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		// When: loading it by URL
		_, err := LoadArtifact(ctx, server.URL+"/missing.json")

		// Then: the status is reported
		require.ErrorContains(t, err, "404")
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := LoadArtifact(ctx, "testdata/missing.json")
		require.Error(t, err)
	})
}
