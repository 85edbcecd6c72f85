// Package config is the configuration core for fluo, a distributed data
// processing application layered on Accumulo and Zookeeper. A Config
// composes layered property sources into one view and exposes every
// tunable through typed accessors that validate on both read and write.
// Role preflight checks gate process startup; Validate reports the first
// malformed property during development.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/magiconair/properties"

	"github.com/fluo-io/fluo-go/pkg/logger"
	"github.com/fluo-io/fluo-go/pkg/props"
)

// Config is the aggregate configuration for all fluo components. Writes go
// to a dedicated top layer; reads consult the layers in order, first match
// wins. A Config is not safe for concurrent mutation without external
// synchronization.
type Config struct {
	store    *props.Store
	log      logger.Logger
	validate *validator.Validate
}

// New returns an empty configuration. Logging is off until WithLogger.
func New() *Config {
	return &Config{
		store:    props.New(),
		log:      logger.Nop(),
		validate: validator.New(),
	}
}

// NewFrom copies every resolved key of other into a fresh configuration's
// write layer. The copy does not alias other's layers.
func NewFrom(other *Config) *Config {
	c := New()
	for _, key := range other.store.Keys() {
		if raw, ok := other.store.Raw(key); ok {
			c.store.Set(key, raw)
		}
	}
	return c
}

// NewFromProperties layers p under the write layer as a live source.
// Expansion on p is disabled so the store's own reference resolution sees
// raw values.
func NewFromProperties(p *properties.Properties) *Config {
	p.DisableExpansion = true
	c := New()
	c.store.Append(p)
	return c
}

// NewFromMap builds a configuration backed by a single source layer built
// from m.
func NewFromMap(m map[string]string) *Config {
	c := New()
	c.store.Append(props.FromMap(m))
	return c
}

// NewFromFile loads path as a source layer. Open and parse failures are
// argument errors; configuration files are caller supplied input.
func NewFromFile(path string) (*Config, error) {
	layer, err := props.FromFile(path)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	c := New()
	c.store.Append(layer)
	return c, nil
}

// WithLogger replaces the configuration's logger and returns the receiver.
// Role checks and Print report through it.
func (c *Config) WithLogger(log logger.Logger) *Config {
	if log == nil {
		log = logger.Nop()
	}
	c.log = log
	return c
}

// SetProperty writes a raw key/value pair into the write layer, bypassing
// typed validation.
func (c *Config) SetProperty(key, value string) {
	c.store.Set(key, value)
}

// GetRawString returns the resolved value for key with no typed validation
// applied.
func (c *Config) GetRawString(key string) (string, error) {
	return c.store.Get(key)
}

// GetRawStringDefault is GetRawString with a fallback for absent keys.
func (c *Config) GetRawStringDefault(key, def string) string {
	return c.store.GetDefault(key, def)
}

// ClearProperty removes key from every layer.
func (c *Config) ClearProperty(key string) {
	c.store.Delete(key)
}

// ContainsKey reports whether any layer holds key.
func (c *Config) ContainsKey(key string) bool {
	return c.store.Contains(key)
}

// Keys returns every visible key in layer order.
func (c *Config) Keys() []string {
	return c.store.Keys()
}

// SetDefault writes value only when no layer holds key.
func (c *Config) SetDefault(key, value string) {
	if !c.store.Contains(key) {
		c.store.Set(key, value)
	}
}

// Print logs every resolved key/value pair.
func (c *Config) Print() {
	for _, key := range c.store.Keys() {
		value, _ := c.store.Get(key)
		c.log.Info(key + " = " + value)
	}
}

// ClientProperties snapshots every client namespace property, for handing
// a minimal connection configuration to a client factory.
func (c *Config) ClientProperties() *properties.Properties {
	p := props.Empty()
	for _, key := range c.store.Keys() {
		if !strings.HasPrefix(key, clientPrefix) {
			continue
		}
		if raw, ok := c.store.Raw(key); ok {
			p.MustSet(key, raw)
		}
	}
	return p
}
