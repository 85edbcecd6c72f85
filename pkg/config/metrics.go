package config

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// SetMetricsYaml drains the reader, base64 encodes the bytes and stores
// the result in the metrics yaml base64 property. A read failure is
// fatal, configuration loading happens at startup and is never retried.
func (c *Config) SetMetricsYaml(in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	c.store.Set(MetricsYamlBase64Prop, base64.StdEncoding.EncodeToString(data))
	return nil
}

// SetMetricsYamlBase64 stores an already encoded metrics configuration.
// Use SetMetricsYaml when holding raw yaml.
func (c *Config) SetMetricsYamlBase64(base64Yaml string) error {
	return c.setNonEmptyString(MetricsYamlBase64Prop, base64Yaml)
}

func (c *Config) MetricsYamlBase64() (string, error) {
	return c.getNonEmptyStringDefault(MetricsYamlBase64Prop, MetricsYamlBase64Default)
}

// MetricsYaml returns the decoded metrics configuration. Stored values
// may carry line breaks from encoders that wrap base64 output, so the
// value is unwrapped before decoding.
func (c *Config) MetricsYaml() ([]byte, error) {
	encoded, err := c.MetricsYamlBase64()
	if err != nil {
		return nil, err
	}
	encoded = strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, invalidf("%s is not valid base64: %v", MetricsYamlBase64Prop, err)
	}
	return data, nil
}
