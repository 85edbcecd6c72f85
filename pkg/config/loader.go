package config

// SetLoaderThreads sets the number of threads each worker uses to run
// loaders. Zero is allowed and makes loading synchronous.
func (c *Config) SetLoaderThreads(numThreads int) error {
	return c.setNonNegativeInt(LoaderNumThreadsProp, numThreads)
}

func (c *Config) LoaderThreads() (int, error) {
	return c.getNonNegativeInt(LoaderNumThreadsProp, LoaderNumThreadsDefault)
}

func (c *Config) SetLoaderQueueSize(queueSize int) error {
	return c.setNonNegativeInt(LoaderQueueSizeProp, queueSize)
}

func (c *Config) LoaderQueueSize() (int, error) {
	return c.getNonNegativeInt(LoaderQueueSizeProp, LoaderQueueSizeDefault)
}
