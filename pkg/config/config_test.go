package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_New(t *testing.T) {
	t.Run("Should start empty with no visible keys", func(t *testing.T) {
		cfg := New()
		assert.Empty(t, cfg.Keys())
		assert.False(t, cfg.ContainsKey(ClientApplicationNameProp))
	})
	t.Run("Should fail loudly on a missing key", func(t *testing.T) {
		cfg := New()
		_, err := cfg.GetRawString("io.fluo.no.such.key")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPropertyNotSet)
	})
	t.Run("Should substitute the caller default only when absent", func(t *testing.T) {
		cfg := New()
		assert.Equal(t, "fallback", cfg.GetRawStringDefault("io.fluo.no.such.key", "fallback"))
		cfg.SetProperty("io.fluo.no.such.key", "stored")
		assert.Equal(t, "stored", cfg.GetRawStringDefault("io.fluo.no.such.key", "fallback"))
	})
}

func TestConfig_SetProperty(t *testing.T) {
	t.Run("Should store and return raw values", func(t *testing.T) {
		cfg := New()
		cfg.SetProperty("io.fluo.app.custom", "value1")
		got, err := cfg.GetRawString("io.fluo.app.custom")
		require.NoError(t, err)
		assert.Equal(t, "value1", got)
		assert.True(t, cfg.ContainsKey("io.fluo.app.custom"))
	})
	t.Run("Should shadow a source layer value", func(t *testing.T) {
		cfg := NewFromMap(map[string]string{"io.fluo.app.custom": "from-map"})
		cfg.SetProperty("io.fluo.app.custom", "from-write")
		got, err := cfg.GetRawString("io.fluo.app.custom")
		require.NoError(t, err)
		assert.Equal(t, "from-write", got)
	})
}

func TestConfig_ClearProperty(t *testing.T) {
	t.Run("Should remove a key from every layer", func(t *testing.T) {
		cfg := NewFromMap(map[string]string{"io.fluo.app.custom": "from-map"})
		cfg.SetProperty("io.fluo.app.custom", "from-write")
		cfg.ClearProperty("io.fluo.app.custom")
		assert.False(t, cfg.ContainsKey("io.fluo.app.custom"))
	})
}

func TestConfig_SetDefault(t *testing.T) {
	t.Run("Should not overwrite an existing value", func(t *testing.T) {
		cfg := New()
		cfg.SetDefault(ClientZookeeperTimeoutProp, "1000")
		cfg.SetDefault(ClientZookeeperTimeoutProp, "2000")
		got, err := cfg.GetRawString(ClientZookeeperTimeoutProp)
		require.NoError(t, err)
		assert.Equal(t, "1000", got)
	})
}

func TestConfig_NewFrom(t *testing.T) {
	t.Run("Should deep copy without aliasing the source", func(t *testing.T) {
		orig := New()
		require.NoError(t, orig.SetApplicationName("myapp"))
		orig.SetAccumuloPassword("secret")

		copied := NewFrom(orig)
		name, err := copied.ApplicationName()
		require.NoError(t, err)
		assert.Equal(t, "myapp", name)

		copied.SetProperty(ClientApplicationNameProp, "other")
		name, err = orig.ApplicationName()
		require.NoError(t, err)
		assert.Equal(t, "myapp", name)
	})
	t.Run("Should copy raw values without resolving references", func(t *testing.T) {
		orig := New()
		orig.SetProperty("io.fluo.app.dir", "${env:FLUO_TEST_COPY_HOME}/data")
		copied := NewFrom(orig)
		raw, ok := copied.store.Raw("io.fluo.app.dir")
		require.True(t, ok)
		assert.Equal(t, "${env:FLUO_TEST_COPY_HOME}/data", raw)
	})
}

func TestConfig_NewFromProperties(t *testing.T) {
	t.Run("Should see later changes to the backing properties", func(t *testing.T) {
		p := properties.NewProperties()
		p.DisableExpansion = true
		p.MustSet(ClientAccumuloUserProp, "alice")

		cfg := NewFromProperties(p)
		got, err := cfg.AccumuloUser()
		require.NoError(t, err)
		assert.Equal(t, "alice", got)

		p.MustSet(ClientAccumuloUserProp, "bob")
		got, err = cfg.AccumuloUser()
		require.NoError(t, err)
		assert.Equal(t, "bob", got)
	})
}

func TestConfig_NewFromFile(t *testing.T) {
	t.Run("Should load properties from a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fluo.properties")
		content := ClientApplicationNameProp + "=fileapp\n" +
			ClientAccumuloUserProp + "=fileuser\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := NewFromFile(path)
		require.NoError(t, err)
		name, err := cfg.ApplicationName()
		require.NoError(t, err)
		assert.Equal(t, "fileapp", name)
	})
	t.Run("Should reject a missing file as an argument error", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.properties"))
		require.Error(t, err)
		assert.True(t, IsInvalid(err))
	})
}

func TestConfig_Keys(t *testing.T) {
	t.Run("Should list write layer keys before source keys", func(t *testing.T) {
		cfg := NewFromMap(map[string]string{"io.fluo.app.b": "2"})
		cfg.SetProperty("io.fluo.app.a", "1")
		assert.Equal(t, []string{"io.fluo.app.a", "io.fluo.app.b"}, cfg.Keys())
	})
}

func TestConfig_ClientProperties(t *testing.T) {
	t.Run("Should copy only client namespace keys", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.SetApplicationName("myapp"))
		require.NoError(t, cfg.SetAccumuloUser("alice"))
		require.NoError(t, cfg.SetAccumuloTable("mytable"))

		client := cfg.ClientProperties()
		_, ok := client.Get(ClientApplicationNameProp)
		assert.True(t, ok)
		_, ok = client.Get(ClientAccumuloUserProp)
		assert.True(t, ok)
		_, ok = client.Get(AdminAccumuloTableProp)
		assert.False(t, ok)
	})
	t.Run("Should snapshot raw values", func(t *testing.T) {
		cfg := New()
		cfg.SetProperty(ClientZookeeperConnectProp, "${env:FLUO_TEST_ZK}/fluo")
		client := cfg.ClientProperties()
		got, ok := client.Get(ClientZookeeperConnectProp)
		require.True(t, ok)
		assert.Equal(t, "${env:FLUO_TEST_ZK}/fluo", got)
	})
}

func TestDefaultProperties(t *testing.T) {
	t.Run("Should carry every default bearing setting", func(t *testing.T) {
		p := DefaultProperties()
		for _, s := range Settings() {
			value, ok := p.Get(s.Key)
			if s.HasDef {
				require.True(t, ok, "missing default for %s", s.Key)
				assert.Equal(t, s.Default, value)
			} else {
				assert.False(t, ok, "unexpected default for %s", s.Key)
			}
		}
	})
	t.Run("Should leave required settings unset", func(t *testing.T) {
		p := DefaultProperties()
		for _, key := range []string{
			ClientApplicationNameProp,
			ClientAccumuloUserProp,
			ClientAccumuloPasswordProp,
			ClientAccumuloInstanceProp,
			AdminAccumuloTableProp,
		} {
			_, ok := p.Get(key)
			assert.False(t, ok, "%s should have no default", key)
		}
	})
	t.Run("Should populate a target store through SetDefaultProperties", func(t *testing.T) {
		cfg := New()
		SetDefaultProperties(cfg.store)
		got, err := cfg.GetRawString(ClientZookeeperConnectProp)
		require.NoError(t, err)
		assert.Equal(t, "localhost/fluo", got)
		timeout, err := cfg.ZookeeperTimeout()
		require.NoError(t, err)
		assert.Equal(t, 30000, timeout)
	})
}

func TestSettings(t *testing.T) {
	t.Run("Should return an independent copy", func(t *testing.T) {
		first := Settings()
		first[0].Key = "mutated"
		second := Settings()
		assert.Equal(t, ClientApplicationNameProp, second[0].Key)
	})
}
