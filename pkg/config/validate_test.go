package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidConfig(t *testing.T) *Config {
	t.Helper()
	cfg := New()
	require.NoError(t, cfg.SetApplicationName("myapp"))
	require.NoError(t, cfg.SetAccumuloUser("alice"))
	cfg.SetAccumuloPassword("secret")
	require.NoError(t, cfg.SetAccumuloInstance("instance1"))
	require.NoError(t, cfg.SetAccumuloTable("fluo_table"))
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Should pass once required properties are set", func(t *testing.T) {
		cfg := newValidConfig(t)
		assert.NoError(t, cfg.Validate())
	})
	t.Run("Should fail a fresh configuration on the first missing property", func(t *testing.T) {
		cfg := New()
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPropertyNotSet)
		assert.ErrorContains(t, err, ClientAccumuloInstanceProp)
	})
	t.Run("Should surface a malformed numeric property", func(t *testing.T) {
		cfg := newValidConfig(t)
		cfg.SetProperty(WorkerNumThreadsProp, "many")
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, WorkerNumThreadsProp)
	})
	t.Run("Should surface a malformed observer specification", func(t *testing.T) {
		cfg := newValidConfig(t)
		cfg.SetProperty(ObserverPrefix+"0", "com.example.Obs,broken")
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "has invalid param")
	})
	t.Run("Should stop at the first failure in accessor order", func(t *testing.T) {
		cfg := newValidConfig(t)
		cfg.SetProperty(ObserverPrefix+"0", ",k=v")
		cfg.SetProperty(WorkerNumThreadsProp, "0")
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "has empty class name")
		assert.NotContains(t, err.Error(), WorkerNumThreadsProp)
	})
	t.Run("Should reject an invalid stored application name", func(t *testing.T) {
		cfg := newValidConfig(t)
		cfg.SetProperty(ClientApplicationNameProp, "bad:name")
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid character ':'")
	})
}
