package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix selects the environment variables that feed configuration
// overrides.
const envPrefix = "FLUO_"

// LoadEnvironment overlays properties from FLUO_ prefixed environment
// variables, so FLUO_CLIENT_ACCUMULO_USER becomes
// io.fluo.client.accumulo.user. Overrides land in the write layer and
// shadow file loaded values.
func (c *Config) LoadEnvironment() error {
	k := koanf.New("/")
	if err := k.Load(env.ProviderWithValue(envPrefix, "/", transformEnvKey), nil); err != nil {
		return invalidf("failed to load environment variables: %v", err)
	}
	for _, key := range k.Keys() {
		if value, ok := k.Get(key).(string); ok {
			c.store.Set(key, value)
		}
	}
	return nil
}

// transformEnvKey converts an environment variable name to a property
// key. The delimiter is "/" rather than "." so the dotted key survives
// koanf intact as one flat key.
func transformEnvKey(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	if key == "" {
		return "", nil
	}
	key = strings.ToLower(strings.ReplaceAll(key, "_", "."))
	return FluoPrefix + "." + key, value
}
