package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportSettings struct {
	Filter struct {
		Size  int    `koanf:"size"`
		Label string `koanf:"label"`
	} `koanf:"filter"`
	Timeout time.Duration `koanf:"timeout"`
	Hosts   []string      `koanf:"hosts"`
	Debug   bool          `koanf:"debug"`
}

func TestAppConfig_View(t *testing.T) {
	t.Run("Should store keys under the application prefix", func(t *testing.T) {
		cfg := New()
		app := cfg.AppConfiguration()
		app.Set("filter.size", "10")
		got, err := cfg.GetRawString(AppPrefix + ".filter.size")
		require.NoError(t, err)
		assert.Equal(t, "10", got)
	})
	t.Run("Should share the backing store with its configuration", func(t *testing.T) {
		cfg := New()
		cfg.SetProperty(AppPrefix+".mode", "batch")
		app := cfg.AppConfiguration()
		got, err := app.Get("mode")
		require.NoError(t, err)
		assert.Equal(t, "batch", got)

		app.Delete("mode")
		assert.False(t, cfg.ContainsKey(AppPrefix+".mode"))
	})
	t.Run("Should list keys with the prefix stripped", func(t *testing.T) {
		cfg := New()
		app := cfg.AppConfiguration()
		app.Set("filter.size", "10")
		app.Set("mode", "batch")
		cfg.SetProperty(ClientZookeeperTimeoutProp, "1000")
		assert.ElementsMatch(t, []string{"filter.size", "mode"}, app.Keys())
	})
	t.Run("Should fall back to the caller default", func(t *testing.T) {
		cfg := New()
		app := cfg.AppConfiguration()
		assert.Equal(t, "none", app.GetDefault("mode", "none"))
		app.Set("mode", "batch")
		assert.Equal(t, "batch", app.GetDefault("mode", "none"))
		assert.True(t, app.Contains("mode"))
	})
}

func TestAppConfig_Decode(t *testing.T) {
	t.Run("Should decode typed fields from dotted keys", func(t *testing.T) {
		cfg := New()
		app := cfg.AppConfiguration()
		app.Set("filter.size", "25")
		app.Set("filter.label", "daily")
		app.Set("timeout", "30s")
		app.Set("hosts", "h1,h2,h3")
		app.Set("debug", "true")

		var settings exportSettings
		require.NoError(t, app.Decode(&settings))
		assert.Equal(t, 25, settings.Filter.Size)
		assert.Equal(t, "daily", settings.Filter.Label)
		assert.Equal(t, 30*time.Second, settings.Timeout)
		assert.Equal(t, []string{"h1", "h2", "h3"}, settings.Hosts)
		assert.True(t, settings.Debug)
	})
	t.Run("Should reject values that cannot convert", func(t *testing.T) {
		cfg := New()
		app := cfg.AppConfiguration()
		app.Set("filter.size", "plenty")
		var settings exportSettings
		err := app.Decode(&settings)
		require.Error(t, err)
		assert.True(t, IsInvalid(err))
	})
}

func TestAppConfig_Load(t *testing.T) {
	t.Run("Should flatten a tagged struct into application keys", func(t *testing.T) {
		var settings exportSettings
		settings.Filter.Size = 25
		settings.Filter.Label = "daily"
		settings.Timeout = 45 * time.Second
		settings.Hosts = []string{"h1", "h2"}
		settings.Debug = true

		cfg := New()
		app := cfg.AppConfiguration()
		require.NoError(t, app.Load(settings))

		got, err := app.Get("filter.size")
		require.NoError(t, err)
		assert.Equal(t, "25", got)
		got, err = app.Get("hosts")
		require.NoError(t, err)
		assert.Equal(t, "h1,h2", got)
	})
	t.Run("Should round trip through Decode", func(t *testing.T) {
		var in exportSettings
		in.Filter.Size = 7
		in.Filter.Label = "hourly"
		in.Timeout = 90 * time.Second
		in.Hosts = []string{"zk1:2181", "zk2:2181"}
		in.Debug = true

		cfg := New()
		app := cfg.AppConfiguration()
		require.NoError(t, app.Load(in))

		var out exportSettings
		require.NoError(t, app.Decode(&out))
		assert.Equal(t, in, out)
	})
}
