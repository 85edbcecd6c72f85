package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig is a read/write view over the application namespace. Keys
// pass through without the AppPrefix, so Set("filter.size", v) stores
// io.fluo.app.filter.size in the backing configuration. The view
// shares the backing store with its Config, it is not a copy.
type AppConfig struct {
	cfg *Config
}

// AppConfiguration returns the application scoped view. Useful for
// seeding application settings before an application is initialized.
func (c *Config) AppConfiguration() *AppConfig {
	return &AppConfig{cfg: c}
}

func (a *AppConfig) qualify(key string) string {
	return AppPrefix + "." + key
}

func (a *AppConfig) Set(key, value string) {
	a.cfg.store.Set(a.qualify(key), value)
}

func (a *AppConfig) Get(key string) (string, error) {
	return a.cfg.store.Get(a.qualify(key))
}

func (a *AppConfig) GetDefault(key, def string) string {
	return a.cfg.store.GetDefault(a.qualify(key), def)
}

func (a *AppConfig) Contains(key string) bool {
	return a.cfg.store.Contains(a.qualify(key))
}

func (a *AppConfig) Delete(key string) {
	a.cfg.store.Delete(a.qualify(key))
}

// Keys lists the application keys with the namespace prefix stripped.
func (a *AppConfig) Keys() []string {
	prefix := AppPrefix + "."
	full := a.cfg.store.KeysWithPrefix(prefix)
	keys := make([]string, len(full))
	for i, k := range full {
		keys[i] = strings.TrimPrefix(k, prefix)
	}
	return keys
}

// flatKeys adapts a flat dotted-key map to a koanf provider by
// unflattening it into the nested form koanf expects.
type flatKeys map[string]any

func (f flatKeys) Read() (map[string]any, error) {
	return maps.Unflatten(f, "."), nil
}

func (f flatKeys) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}

// Decode unmarshals the application keys into target, a pointer to a
// struct tagged with `koanf`. Dotted key segments map to nested
// fields; durations and comma separated lists decode through hooks.
func (a *AppConfig) Decode(target any) error {
	flat := make(map[string]any)
	for _, key := range a.Keys() {
		value, err := a.Get(key)
		if err != nil {
			return err
		}
		flat[key] = value
	}
	k := koanf.New(".")
	if err := k.Load(flatKeys(flat), nil); err != nil {
		return invalidf("failed to load application configuration: %v", err)
	}
	if err := k.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           target,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return invalidf("failed to decode application configuration: %v", err)
	}
	return nil
}

// Load is the inverse of Decode. Every koanf tagged field of source is
// stored as an application key, nested structs flattening to dotted
// keys. Slices store comma separated so Decode reads them back.
func (a *AppConfig) Load(source any) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(source, "koanf"), nil); err != nil {
		return invalidf("failed to read application configuration struct: %v", err)
	}
	for _, key := range k.Keys() {
		value, ok := stringifyAppValue(k.Get(key))
		if !ok {
			continue
		}
		a.Set(key, value)
	}
	return nil
}

func stringifyAppValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []string:
		return strings.Join(t, ","), true
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = fmt.Sprintf("%v", e)
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
