package config

import "strconv"

func (c *Config) SetMiniClass(miniClass string) error {
	return c.setNonEmptyString(MiniClassProp, miniClass)
}

func (c *Config) MiniClass() (string, error) {
	return c.getNonEmptyStringDefault(MiniClassProp, MiniClassDefault)
}

// SetMiniStartAccumulo controls whether MiniFluo starts its own
// Accumulo cluster or connects to one described by the client
// properties.
func (c *Config) SetMiniStartAccumulo(startAccumulo bool) {
	c.store.Set(MiniStartAccumuloProp, strconv.FormatBool(startAccumulo))
}

func (c *Config) MiniStartAccumulo() (bool, error) {
	return c.getBool(MiniStartAccumuloProp, MiniStartAccumuloDefault)
}

func (c *Config) SetMiniDataDir(dataDir string) error {
	return c.setNonEmptyString(MiniDataDirProp, dataDir)
}

func (c *Config) MiniDataDir() (string, error) {
	return c.getNonEmptyStringDefault(MiniDataDirProp, MiniDataDirDefault)
}
