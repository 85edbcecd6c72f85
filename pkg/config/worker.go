package config

func (c *Config) SetWorkerThreads(numThreads int) error {
	return c.setPositiveInt(WorkerNumThreadsProp, numThreads)
}

func (c *Config) WorkerThreads() (int, error) {
	return c.getPositiveInt(WorkerNumThreadsProp, WorkerNumThreadsDefault)
}

func (c *Config) SetWorkerInstances(workerInstances int) error {
	return c.setPositiveInt(WorkerInstancesProp, workerInstances)
}

func (c *Config) WorkerInstances() (int, error) {
	return c.getPositiveInt(WorkerInstancesProp, WorkerInstancesDefault)
}

// SetWorkerMaxMemory sets the memory limit in MB for each worker
// process.
func (c *Config) SetWorkerMaxMemory(maxMemoryMB int) error {
	return c.setPositiveInt(WorkerMaxMemoryMbProp, maxMemoryMB)
}

func (c *Config) WorkerMaxMemory() (int, error) {
	return c.getPositiveInt(WorkerMaxMemoryMbProp, WorkerMaxMemoryMbDefault)
}

func (c *Config) SetWorkerNumCores(numCores int) error {
	return c.setPositiveInt(WorkerNumCoresProp, numCores)
}

func (c *Config) WorkerNumCores() (int, error) {
	return c.getPositiveInt(WorkerNumCoresProp, WorkerNumCoresDefault)
}
