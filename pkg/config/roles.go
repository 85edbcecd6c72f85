package config

// Role names a deployment mode with its own required property set.
type Role int

const (
	RoleClient Role = iota
	RoleAdmin
	RoleOracle
	RoleWorker
	RoleMiniFluo
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleAdmin:
		return "admin"
	case RoleOracle:
		return "oracle"
	case RoleWorker:
		return "worker"
	case RoleMiniFluo:
		return "mini"
	default:
		return "unknown"
	}
}

// ParseRole resolves a role name as used on the command line.
func ParseRole(name string) (Role, error) {
	switch name {
	case "client":
		return RoleClient, nil
	case "admin":
		return RoleAdmin, nil
	case "oracle":
		return RoleOracle, nil
	case "worker":
		return RoleWorker, nil
	case "mini", "minifluo":
		return RoleMiniFluo, nil
	default:
		return 0, invalidf("unknown role %q", name)
	}
}

// stringPropSet reports whether key resolves to a non-empty value,
// logging the key when it does not.
func (c *Config) stringPropSet(key string) bool {
	if value, ok := c.store.Lookup(key); ok && value != "" {
		return true
	}
	c.log.Info(key + " is not set")
	return false
}

func (c *Config) stringPropNotSet(key string) bool {
	if value, ok := c.store.Lookup(key); ok && value != "" {
		c.log.Info(key + " should not be set")
		return false
	}
	return true
}

// HasRequiredClientProps reports whether the properties a client needs
// are present. Every check runs even after one fails so a single pass
// logs all missing properties.
func (c *Config) HasRequiredClientProps() bool {
	valid := true
	valid = c.stringPropSet(ClientApplicationNameProp) && valid
	valid = c.stringPropSet(ClientAccumuloUserProp) && valid
	valid = c.stringPropSet(ClientAccumuloPasswordProp) && valid
	valid = c.stringPropSet(ClientAccumuloInstanceProp) && valid
	return valid
}

// HasRequiredAdminProps reports whether administrative operations have
// what they need.
func (c *Config) HasRequiredAdminProps() bool {
	valid := true
	valid = c.HasRequiredClientProps() && valid
	valid = c.stringPropSet(AdminAccumuloTableProp) && valid
	return valid
}

// HasRequiredOracleProps reports whether an oracle process has what it
// needs.
func (c *Config) HasRequiredOracleProps() bool {
	valid := true
	valid = c.HasRequiredClientProps() && valid
	return valid
}

// HasRequiredWorkerProps reports whether a worker process has what it
// needs.
func (c *Config) HasRequiredWorkerProps() bool {
	valid := true
	valid = c.HasRequiredClientProps() && valid
	return valid
}

// HasRequiredMiniFluoProps reports whether MiniFluo can start. When
// MiniFluo starts its own Accumulo the client connection properties
// must be absent, otherwise every role's requirements apply.
func (c *Config) HasRequiredMiniFluoProps() bool {
	startAccumulo, err := c.MiniStartAccumulo()
	if err != nil {
		c.log.Error(MiniStartAccumuloProp+" has an invalid value", "error", err)
		return false
	}
	valid := true
	if startAccumulo {
		valid = c.stringPropNotSet(ClientAccumuloUserProp) && valid
		valid = c.stringPropNotSet(ClientAccumuloPasswordProp) && valid
		valid = c.stringPropNotSet(ClientAccumuloInstanceProp) && valid
		valid = c.stringPropNotSet(ClientAccumuloZookeepersProp) && valid
		valid = c.stringPropNotSet(ClientZookeeperConnectProp) && valid
		if !valid {
			c.log.Error("Client properties should not be set in your configuration if " +
				"MiniFluo is configured to start its own accumulo (indicated by " +
				MiniStartAccumuloProp + " being set to true)")
		}
	} else {
		valid = c.HasRequiredClientProps() && valid
		valid = c.HasRequiredAdminProps() && valid
		valid = c.HasRequiredOracleProps() && valid
		valid = c.HasRequiredWorkerProps() && valid
	}
	return valid
}

// CheckRole runs the preflight check for role. The boolean mirrors the
// HasRequired methods; the error reports an unrecognized role only.
func (c *Config) CheckRole(role Role) (bool, error) {
	switch role {
	case RoleClient:
		return c.HasRequiredClientProps(), nil
	case RoleAdmin:
		return c.HasRequiredAdminProps(), nil
	case RoleOracle:
		return c.HasRequiredOracleProps(), nil
	case RoleWorker:
		return c.HasRequiredWorkerProps(), nil
	case RoleMiniFluo:
		return c.HasRequiredMiniFluoProps(), nil
	default:
		return false, invalidf("unknown role %q", role.String())
	}
}
