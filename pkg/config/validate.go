package config

// Validate exercises every typed getter and returns the first failure.
// A freshly constructed configuration does not pass, the required
// client and admin properties have no defaults.
func (c *Config) Validate() error {
	// keep in alphabetical order
	checks := []func() error{
		func() error { _ = c.AccumuloClasspath(); return nil },
		func() error { _, err := c.AccumuloInstance(); return err },
		func() error { _, err := c.AccumuloPassword(); return err },
		func() error { _, err := c.AccumuloTable(); return err },
		func() error { _, err := c.AccumuloUser(); return err },
		func() error { _, err := c.AccumuloZookeepers(); return err },
		func() error { _, err := c.AdminClass(); return err },
		func() error { _, err := c.ApplicationName(); return err },
		func() error { _, err := c.AppZookeepers(); return err },
		func() error { _, err := c.ClientClass(); return err },
		func() error { _, err := c.ClientRetryTimeout(); return err },
		func() error { _, err := c.LoaderQueueSize(); return err },
		func() error { _, err := c.LoaderThreads(); return err },
		func() error { _, err := c.MetricsYaml(); return err },
		func() error { _, err := c.MetricsYamlBase64(); return err },
		func() error { _, err := c.ObserverSpecifications(); return err },
		func() error { _, err := c.OracleInstances(); return err },
		func() error { _, err := c.OracleMaxMemory(); return err },
		func() error { _, err := c.OracleNumCores(); return err },
		func() error { _, err := c.OraclePort(); return err },
		func() error { _, err := c.TransactionRollbackTime(); return err },
		func() error { _, err := c.WorkerInstances(); return err },
		func() error { _, err := c.WorkerMaxMemory(); return err },
		func() error { _, err := c.WorkerNumCores(); return err },
		func() error { _, err := c.WorkerThreads(); return err },
		func() error { _, err := c.ZookeeperTimeout(); return err },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
