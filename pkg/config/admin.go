package config

// SetAccumuloTable sets the name of the Accumulo table where the
// application stores its data. Required for administrative operations,
// there is no default.
func (c *Config) SetAccumuloTable(table string) error {
	return c.setNonEmptyString(AdminAccumuloTableProp, table)
}

func (c *Config) AccumuloTable() (string, error) {
	return c.getNonEmptyString(AdminAccumuloTableProp)
}

// SetAccumuloClasspath sets a comma separated list of jars that worker
// and oracle processes add to the Accumulo classpath. Empty is a valid
// value and means nothing extra is added.
func (c *Config) SetAccumuloClasspath(classpath string) {
	c.store.Set(AdminAccumuloClasspathProp, classpath)
}

func (c *Config) AccumuloClasspath() string {
	return c.store.GetDefault(AdminAccumuloClasspathProp, AccumuloClasspathDefault)
}

func (c *Config) SetAdminClass(adminClass string) error {
	return c.setNonEmptyString(AdminClassProp, adminClass)
}

func (c *Config) AdminClass() (string, error) {
	return c.getNonEmptyStringDefault(AdminClassProp, AdminClassDefault)
}
