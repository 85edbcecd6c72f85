package config

func (c *Config) SetOracleInstances(oracleInstances int) error {
	return c.setPositiveInt(OracleInstancesProp, oracleInstances)
}

func (c *Config) OracleInstances() (int, error) {
	return c.getPositiveInt(OracleInstancesProp, OracleInstancesDefault)
}

// SetOracleMaxMemory sets the memory limit in MB for each oracle
// process.
func (c *Config) SetOracleMaxMemory(oracleMaxMemory int) error {
	return c.setPositiveInt(OracleMaxMemoryMbProp, oracleMaxMemory)
}

func (c *Config) OracleMaxMemory() (int, error) {
	return c.getPositiveInt(OracleMaxMemoryMbProp, OracleMaxMemoryMbDefault)
}

func (c *Config) SetOracleNumCores(numCores int) error {
	return c.setPositiveInt(OracleNumCoresProp, numCores)
}

func (c *Config) OracleNumCores() (int, error) {
	return c.getPositiveInt(OracleNumCoresProp, OracleNumCoresDefault)
}

// SetOraclePort sets the port the oracle server binds for timestamp
// requests.
func (c *Config) SetOraclePort(port int) error {
	return c.setPort(OraclePortProp, port)
}

func (c *Config) OraclePort() (int, error) {
	return c.getPort(OraclePortProp, OraclePortDefault)
}
