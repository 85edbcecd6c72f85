package config

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_MetricsYaml(t *testing.T) {
	t.Run("Should default to reporting every 60 seconds", func(t *testing.T) {
		cfg := New()
		encoded, err := cfg.MetricsYamlBase64()
		require.NoError(t, err)
		assert.Equal(t, "LS0tCmZyZXF1ZW5jeTogNjAgc2Vjb25kcwo=", encoded)

		yaml, err := cfg.MetricsYaml()
		require.NoError(t, err)
		assert.Equal(t, "---\nfrequency: 60 seconds\n", string(yaml))
	})
	t.Run("Should encode a reader and decode it back", func(t *testing.T) {
		const doc = "---\nfrequency: 5 seconds\nreporters:\n  - type: console\n"
		cfg := New()
		require.NoError(t, cfg.SetMetricsYaml(strings.NewReader(doc)))

		encoded, err := cfg.MetricsYamlBase64()
		require.NoError(t, err)
		assert.NotContains(t, encoded, "\n")

		yaml, err := cfg.MetricsYaml()
		require.NoError(t, err)
		assert.Equal(t, doc, string(yaml))
	})
	t.Run("Should tolerate line wrapped base64 values", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.SetMetricsYamlBase64("LS0tCmZyZXF1ZW5je\nTogNjAgc2Vjb25kcwo=\r\n"))
		yaml, err := cfg.MetricsYaml()
		require.NoError(t, err)
		assert.Equal(t, "---\nfrequency: 60 seconds\n", string(yaml))
	})
	t.Run("Should wrap reader failures as fatal", func(t *testing.T) {
		cfg := New()
		err := cfg.SetMetricsYaml(iotest.ErrReader(errors.New("disk gone")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadFailed)
		assert.True(t, IsFatal(err))
	})
	t.Run("Should reject an empty base64 value", func(t *testing.T) {
		cfg := New()
		err := cfg.SetMetricsYamlBase64("")
		require.Error(t, err)
		assert.ErrorContains(t, err, MetricsYamlBase64Prop+" cannot be empty")
	})
	t.Run("Should reject a malformed stored value on decode", func(t *testing.T) {
		cfg := New()
		cfg.SetProperty(MetricsYamlBase64Prop, "!!not-base64!!")
		_, err := cfg.MetricsYaml()
		require.Error(t, err)
		assert.True(t, IsInvalid(err))
		assert.ErrorContains(t, err, "is not valid base64")
	})
	t.Run("Should drain an empty reader and fail later reads", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.SetMetricsYaml(strings.NewReader("")))
		_, err := cfg.MetricsYamlBase64()
		require.Error(t, err)
		assert.ErrorContains(t, err, "cannot be empty")
	})
}
