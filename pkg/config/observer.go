package config

import (
	"strconv"
	"strings"
)

// ObserverParam is a single key=value parameter of an observer
// specification. Parameter order is preserved through encode and
// decode.
type ObserverParam struct {
	Key   string
	Value string
}

// ObserverSpecification names an observer class together with its
// parameters. One observer serializes to "class(,key=value)*" stored
// under a numbered key below ObserverPrefix.
type ObserverSpecification struct {
	Class      string
	Parameters []ObserverParam
}

// NewObserverSpecification builds a specification from parameter pairs
// given as alternating key, value strings.
func NewObserverSpecification(class string, pairs ...string) ObserverSpecification {
	spec := ObserverSpecification{Class: class}
	for i := 0; i+1 < len(pairs); i += 2 {
		spec.Parameters = append(spec.Parameters, ObserverParam{Key: pairs[i], Value: pairs[i+1]})
	}
	return spec
}

// Param returns the value of the named parameter.
func (s ObserverSpecification) Param(key string) (string, bool) {
	for _, p := range s.Parameters {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// ObserverSpecifications decodes every property under ObserverPrefix,
// numeric suffix or not, in the store's key iteration order.
func (c *Config) ObserverSpecifications() ([]ObserverSpecification, error) {
	var specs []ObserverSpecification
	for _, key := range c.store.KeysWithPrefix(ObserverPrefix) {
		value, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}
		spec, err := decodeObserver(key, strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// SetObservers replaces the numbered observer entries with the given
// specifications, assigning contiguous indexes from zero. Existing
// numbered keys are cleared first so a shorter list leaves no orphans.
// Nothing is mutated when any specification fails to encode.
func (c *Config) SetObservers(observers []ObserverSpecification) error {
	encoded := make([]string, len(observers))
	for i, spec := range observers {
		value, err := encodeObserver(ObserverPrefix+strconv.Itoa(i), spec)
		if err != nil {
			return err
		}
		encoded[i] = value
	}
	for _, key := range c.store.KeysWithPrefix(ObserverPrefix) {
		if isAllDigits(key[len(ObserverPrefix):]) {
			c.store.Delete(key)
		}
	}
	for i, value := range encoded {
		c.store.Set(ObserverPrefix+strconv.Itoa(i), value)
	}
	return nil
}

func decodeObserver(key, value string) (ObserverSpecification, error) {
	if value == "" {
		return ObserverSpecification{}, invalidf("%s is set to empty value", key)
	}
	fields := strings.Split(value, ",")
	if fields[0] == "" {
		return ObserverSpecification{}, invalidf("%s has empty class name: %s", key, fields[0])
	}
	spec := ObserverSpecification{Class: fields[0]}
	for _, field := range fields[1:] {
		kv := strings.Split(field, "=")
		if len(kv) != 2 {
			return ObserverSpecification{}, invalidf(
				"%s has invalid param. Expected 'key=value' but encountered '%s'", key, field)
		}
		if kv[0] == "" || kv[1] == "" {
			return ObserverSpecification{}, invalidf("%s has empty key or value in param: %s", key, field)
		}
		spec.Parameters = append(spec.Parameters, ObserverParam{Key: kv[0], Value: kv[1]})
	}
	return spec, nil
}

func encodeObserver(key string, spec ObserverSpecification) (string, error) {
	if spec.Class == "" {
		return "", invalidf("%s has empty class name: %s", key, spec.Class)
	}
	var b strings.Builder
	b.WriteString(spec.Class)
	for _, p := range spec.Parameters {
		if p.Key == "" || p.Value == "" {
			return "", invalidf("%s has empty key or value in param: %s=%s", key, p.Key, p.Value)
		}
		b.WriteByte(',')
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String(), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
