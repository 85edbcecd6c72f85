// Package props implements the layered property store backing fluo
// configuration. A store composes one mutable write layer with an ordered
// list of source layers; lookups check the write layer first and then each
// source in order, so the first layer containing a key wins.
//
// Layers are flat string maps. Keys are dotted paths such as
// "io.fluo.client.zookeeper.timeout" and are never split on delimiters.
// Values may reference the process environment with ${env:NAME} or other
// properties with ${key}; references are resolved on read and unresolvable
// references are left literal.
package props

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/magiconair/properties"
)

// ErrKeyNotFound reports a lookup for a key no layer contains.
var ErrKeyNotFound = errors.New("property key not found")

// maxExpandDepth bounds recursive ${key} resolution so reference cycles
// terminate instead of recursing forever.
const maxExpandDepth = 8

// Store is a layered property store. The zero value is not usable; call
// New. A Store is not safe for concurrent mutation without external
// synchronization.
type Store struct {
	write   *properties.Properties
	sources []*properties.Properties
}

// New returns an empty store holding only a fresh write layer.
func New() *Store {
	return &Store{write: Empty()}
}

// Append adds a source layer below all existing layers. The store keeps a
// live reference, so later changes to the layer remain visible. Writes
// through Set never touch source layers; Delete does.
func (s *Store) Append(layer *properties.Properties) {
	s.sources = append(s.sources, layer)
}

func (s *Store) layers() []*properties.Properties {
	all := make([]*properties.Properties, 0, len(s.sources)+1)
	all = append(all, s.write)
	return append(all, s.sources...)
}

// Set writes key into the write layer, shadowing any source layer value.
func (s *Store) Set(key, value string) {
	s.write.MustSet(key, value)
}

// Raw returns the stored value for key without resolving ${...} references.
func (s *Store) Raw(key string) (string, bool) {
	for _, l := range s.layers() {
		if v, ok := l.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Lookup returns the resolved value for key and whether any layer holds it.
func (s *Store) Lookup(key string) (string, bool) {
	v, ok := s.Raw(key)
	if !ok {
		return "", false
	}
	return s.expand(v, 0), true
}

// Get returns the resolved value for key, or an error wrapping
// ErrKeyNotFound when no layer holds it.
func (s *Store) Get(key string) (string, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// GetDefault returns the resolved value for key, or def when no layer holds
// the key. The default passes through the same reference resolution as a
// stored value.
func (s *Store) GetDefault(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return s.expand(def, 0)
}

// Contains reports whether any layer holds key.
func (s *Store) Contains(key string) bool {
	_, ok := s.Raw(key)
	return ok
}

// Delete removes key from every layer, write layer and sources alike, so a
// source-loaded value cannot resurface after a delete.
func (s *Store) Delete(key string) {
	for _, l := range s.layers() {
		l.Delete(key)
	}
}

// Keys returns every key visible through the store, write layer first and
// then each source in order, preserving insertion order inside each layer.
// A key shadowed by a higher layer appears once.
func (s *Store) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, l := range s.layers() {
		for _, k := range l.Keys() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// KeysWithPrefix returns the subset of Keys starting with prefix, in the
// same order.
func (s *Store) KeysWithPrefix(prefix string) []string {
	var keys []string
	for _, k := range s.Keys() {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Interpolate resolves ${env:NAME} and ${key} references inside value
// against the process environment and the store itself. Unresolvable
// references stay literal.
func (s *Store) Interpolate(value string) string {
	return s.expand(value, 0)
}

func (s *Store) expand(value string, depth int) string {
	if depth >= maxExpandDepth || !strings.Contains(value, "${") {
		return value
	}
	var b strings.Builder
	rest := value
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		n := strings.Index(rest[i:], "}")
		if n < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:i])
		if v, ok := s.resolve(rest[i+2:i+n], depth); ok {
			b.WriteString(v)
		} else {
			b.WriteString(rest[i : i+n+1])
		}
		rest = rest[i+n+1:]
	}
}

func (s *Store) resolve(ref string, depth int) (string, bool) {
	if name, isEnv := strings.CutPrefix(ref, "env:"); isEnv {
		return os.LookupEnv(name)
	}
	raw, ok := s.Raw(ref)
	if !ok {
		return "", false
	}
	return s.expand(raw, depth+1), true
}
