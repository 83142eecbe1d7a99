package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Require(t *testing.T) {
	opts := Options{"merchant_id": "m", "public_key": "p", "private_key": nil}

	require.NoError(t, opts.Require("merchant_id", "public_key"))

	err := opts.Require("merchant_id", "private_key", "public_key")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "private_key", cfgErr.Key)
}

func TestOptions_Require_FirstMissingKeyWins(t *testing.T) {
	err := Options{}.Require("a", "b")
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "a", cfgErr.Key)
}

func TestOptions_Accessors(t *testing.T) {
	opts := Options{"order_id": "REF1", "amount": 10, "test": "true", "live": false}
	assert.Equal(t, "REF1", opts.String("order_id"))
	assert.Equal(t, "10", opts.String("amount"))
	assert.Equal(t, "", opts.String("missing"))
	assert.True(t, opts.Bool("test"))
	assert.False(t, opts.Bool("live"))
	assert.False(t, opts.Bool("missing"))
	assert.True(t, opts.HasAny("x", "order_id"))

	merged := opts.Merge(Options{"order_id": "REF2"})
	assert.Equal(t, "REF2", merged.String("order_id"))
	assert.Equal(t, "REF1", opts.String("order_id"))
}
