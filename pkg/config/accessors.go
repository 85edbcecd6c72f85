package config

import (
	"strconv"
	"strings"
)

// Typed accessor helpers. Getters re-run the setter's rule on whatever
// value they resolve, so a bad default or a bad file loaded value fails
// exactly like a bad caller value.

func (c *Config) checkPositive(key string, value int64) error {
	if err := c.validate.Var(value, "gt=0"); err != nil {
		return invalidf("%s must be positive", key)
	}
	return nil
}

func (c *Config) checkNonNegative(key string, value int) error {
	if err := c.validate.Var(value, "gte=0"); err != nil {
		return invalidf("%s must be non-negative", key)
	}
	return nil
}

func (c *Config) checkPort(key string, value int) error {
	if err := c.validate.Var(value, "gte=1,lte=65535"); err != nil {
		return invalidf("%s must be valid port (1-65535)", key)
	}
	return nil
}

func (c *Config) checkNonEmpty(key, value string) error {
	if err := c.validate.Var(value, "required"); err != nil {
		return invalidf("%s cannot be empty", key)
	}
	return nil
}

func (c *Config) getInt(key string, def int) (int, error) {
	raw, ok := c.store.Lookup(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidf("%s has non-integer value %q", key, raw)
	}
	return value, nil
}

func (c *Config) getInt64(key string, def int64) (int64, error) {
	raw, ok := c.store.Lookup(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, invalidf("%s has non-integer value %q", key, raw)
	}
	return value, nil
}

func (c *Config) getBool(key string, def bool) (bool, error) {
	raw, ok := c.store.Lookup(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, invalidf("%s has non-boolean value %q", key, raw)
	}
	return value, nil
}

func (c *Config) setPositiveInt(key string, value int) error {
	if err := c.checkPositive(key, int64(value)); err != nil {
		return err
	}
	c.store.Set(key, strconv.Itoa(value))
	return nil
}

func (c *Config) getPositiveInt(key string, def int) (int, error) {
	value, err := c.getInt(key, def)
	if err != nil {
		return 0, err
	}
	if err := c.checkPositive(key, int64(value)); err != nil {
		return 0, err
	}
	return value, nil
}

func (c *Config) setNonNegativeInt(key string, value int) error {
	if err := c.checkNonNegative(key, value); err != nil {
		return err
	}
	c.store.Set(key, strconv.Itoa(value))
	return nil
}

func (c *Config) getNonNegativeInt(key string, def int) (int, error) {
	value, err := c.getInt(key, def)
	if err != nil {
		return 0, err
	}
	if err := c.checkNonNegative(key, value); err != nil {
		return 0, err
	}
	return value, nil
}

func (c *Config) setPositiveInt64(key string, value int64) error {
	if err := c.checkPositive(key, value); err != nil {
		return err
	}
	c.store.Set(key, strconv.FormatInt(value, 10))
	return nil
}

func (c *Config) getPositiveInt64(key string, def int64) (int64, error) {
	value, err := c.getInt64(key, def)
	if err != nil {
		return 0, err
	}
	if err := c.checkPositive(key, value); err != nil {
		return 0, err
	}
	return value, nil
}

func (c *Config) setPort(key string, value int) error {
	if err := c.checkPort(key, value); err != nil {
		return err
	}
	c.store.Set(key, strconv.Itoa(value))
	return nil
}

func (c *Config) getPort(key string, def int) (int, error) {
	value, err := c.getInt(key, def)
	if err != nil {
		return 0, err
	}
	if err := c.checkPort(key, value); err != nil {
		return 0, err
	}
	return value, nil
}

func (c *Config) setNonEmptyString(key, value string) error {
	if err := c.checkNonEmpty(key, value); err != nil {
		return err
	}
	c.store.Set(key, value)
	return nil
}

// getNonEmptyString fails loudly when the key is absent.
func (c *Config) getNonEmptyString(key string) (string, error) {
	value, ok := c.store.Lookup(key)
	if !ok {
		return "", notSetErr(key)
	}
	if err := c.checkNonEmpty(key, value); err != nil {
		return "", err
	}
	return value, nil
}

// getNonEmptyStringDefault substitutes def only when the key is entirely
// absent; a stored empty value still fails the non-empty rule.
func (c *Config) getNonEmptyStringDefault(key, def string) (string, error) {
	value := c.store.GetDefault(key, def)
	if err := c.checkNonEmpty(key, value); err != nil {
		return "", err
	}
	return value, nil
}
