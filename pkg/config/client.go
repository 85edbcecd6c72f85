package config

import (
	"strconv"
	"unicode/utf16"
)

// verifyApplicationName rejects names that are unsafe as a node path
// segment in ZooKeeper or as an HDFS path segment. The scan runs over
// UTF-16 code units so that supplementary characters are judged by
// their surrogate halves, matching how ZooKeeper sees the name.
func verifyApplicationName(name string) error {
	if name == "" {
		return invalidf("Invalid application name %q caused by Application name length must be > 0", name)
	}
	reason := ""
	units := utf16.Encode([]rune(name))
	for i, u := range units {
		switch {
		case u == 0:
			reason = "null character not allowed @" + strconv.Itoa(i)
		case u == '/' || u == '.' || u == ':':
			reason = "invalid character '" + string(rune(u)) + "'"
		case u >= 0x0001 && u <= 0x001f,
			u >= 0x007f && u <= 0x009f,
			u >= 0xd800 && u <= 0xf8ff,
			u >= 0xfff0 && u <= 0xffff:
			reason = "invalid charater @" + strconv.Itoa(i)
		}
		if reason != "" {
			return invalidf("Invalid application name %q caused by %s", name, reason)
		}
	}
	return nil
}

// SetApplicationName sets the name of the Fluo application. The name
// becomes part of the application's ZooKeeper path, so it must survive
// the structural checks in verifyApplicationName.
func (c *Config) SetApplicationName(name string) error {
	if err := verifyApplicationName(name); err != nil {
		return err
	}
	c.store.Set(ClientApplicationNameProp, name)
	return nil
}

func (c *Config) ApplicationName() (string, error) {
	name, ok := c.store.Lookup(ClientApplicationNameProp)
	if !ok {
		return "", notSetErr(ClientApplicationNameProp)
	}
	if err := verifyApplicationName(name); err != nil {
		return "", err
	}
	return name, nil
}

// SetInstanceZookeepers sets the ZooKeeper connection string for the
// Fluo instance, of the form "host1:port,host2:port/chroot".
func (c *Config) SetInstanceZookeepers(zookeepers string) error {
	return c.setNonEmptyString(ClientZookeeperConnectProp, zookeepers)
}

func (c *Config) InstanceZookeepers() (string, error) {
	return c.getNonEmptyStringDefault(ClientZookeeperConnectProp, ZookeeperConnectDefault)
}

// AppZookeepers returns the ZooKeeper root path of the application,
// derived from the instance connection string and the application name.
// It is computed on every call, never stored.
func (c *Config) AppZookeepers() (string, error) {
	zk, err := c.InstanceZookeepers()
	if err != nil {
		return "", err
	}
	name, err := c.ApplicationName()
	if err != nil {
		return "", err
	}
	return zk + "/" + name, nil
}

func (c *Config) SetZookeeperTimeout(timeoutMS int) error {
	return c.setPositiveInt(ClientZookeeperTimeoutProp, timeoutMS)
}

func (c *Config) ZookeeperTimeout() (int, error) {
	return c.getPositiveInt(ClientZookeeperTimeoutProp, ZookeeperTimeoutDefault)
}

func (c *Config) SetAccumuloInstance(instance string) error {
	return c.setNonEmptyString(ClientAccumuloInstanceProp, instance)
}

func (c *Config) AccumuloInstance() (string, error) {
	return c.getNonEmptyString(ClientAccumuloInstanceProp)
}

func (c *Config) SetAccumuloUser(user string) error {
	return c.setNonEmptyString(ClientAccumuloUserProp, user)
}

func (c *Config) AccumuloUser() (string, error) {
	return c.getNonEmptyString(ClientAccumuloUserProp)
}

// SetAccumuloPassword accepts any value, the empty string included.
// Requiring a non-empty password would rule out Accumulo instances
// configured with blank trace credentials.
func (c *Config) SetAccumuloPassword(password string) {
	c.store.Set(ClientAccumuloPasswordProp, password)
}

// AccumuloPassword requires the property to be present but places no
// constraint on its value.
func (c *Config) AccumuloPassword() (string, error) {
	password, ok := c.store.Lookup(ClientAccumuloPasswordProp)
	if !ok {
		return "", notSetErr(ClientAccumuloPasswordProp)
	}
	return password, nil
}

func (c *Config) SetAccumuloZookeepers(zookeepers string) error {
	return c.setNonEmptyString(ClientAccumuloZookeepersProp, zookeepers)
}

func (c *Config) AccumuloZookeepers() (string, error) {
	return c.getNonEmptyStringDefault(ClientAccumuloZookeepersProp, AccumuloZookeepersDefault)
}

// SetClientRetryTimeout bounds how long clients retry failed operations
// before giving up. A value of -1 means retry forever.
func (c *Config) SetClientRetryTimeout(timeoutMS int) error {
	if err := c.validate.Var(timeoutMS, "gte=-1"); err != nil {
		return invalidf("%s must be >= -1", ClientRetryTimeoutMsProp)
	}
	c.store.Set(ClientRetryTimeoutMsProp, strconv.Itoa(timeoutMS))
	return nil
}

func (c *Config) ClientRetryTimeout() (int, error) {
	timeout, err := c.getInt(ClientRetryTimeoutMsProp, ClientRetryTimeoutMsDefault)
	if err != nil {
		return 0, err
	}
	if err := c.validate.Var(timeout, "gte=-1"); err != nil {
		return 0, invalidf("%s must be >= -1", ClientRetryTimeoutMsProp)
	}
	return timeout, nil
}

func (c *Config) SetClientClass(clientClass string) error {
	return c.setNonEmptyString(ClientClassProp, clientClass)
}

func (c *Config) ClientClass() (string, error) {
	return c.getNonEmptyStringDefault(ClientClassProp, ClientClassDefault)
}
