package entity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	t.Run("Converts a fractional amount to wei", func(t *testing.T) {
		// When: parsing half an ether
		wei, err := ParseEther("0.5")

		// Then: it equals 5e17 wei
		require.NoError(t, err)
		assert.Equal(t, "500000000000000000", wei.String())
	})

	t.Run("Accepts whole and leading-dot amounts", func(t *testing.T) {
		wei, err := ParseEther(" 2 ")
		require.NoError(t, err)
		assert.Equal(t, "2000000000000000000", wei.String())

		wei, err = ParseEther(".25")
		require.NoError(t, err)
		assert.Equal(t, "250000000000000000", wei.String())
	})

	t.Run("Rejects malformed amounts", func(t *testing.T) {
		for _, input := range []string{"", "abc", "-1", "1.2.3", "1.", "0.0000000000000000001"} {
			_, err := ParseEther(input)

			assert.ErrorIs(t, err, ErrInvalidAmount, input)
		}
	})
}

func TestFormatEther(t *testing.T) {
	t.Run("Trims trailing zeros", func(t *testing.T) {
		wei, ok := new(big.Int).SetString("500000000000000000", 10)
		require.True(t, ok)

		assert.Equal(t, "0.5", FormatEther(wei))
	})

	t.Run("Formats whole amounts and zero", func(t *testing.T) {
		wei, ok := new(big.Int).SetString("3000000000000000000", 10)
		require.True(t, ok)

		assert.Equal(t, "3", FormatEther(wei))
		assert.Equal(t, "0", FormatEther(big.NewInt(0)))
		assert.Equal(t, "0", FormatEther(nil))
	})

	t.Run("Keeps the smallest unit", func(t *testing.T) {
		assert.Equal(t, "0.000000000000000001", FormatEther(big.NewInt(1)))
	})
}
