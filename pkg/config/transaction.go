package config

import "time"

// SetTransactionRollbackTime sets how long to wait before rolling back
// a transaction that appears abandoned. The value is stored with
// millisecond granularity, so anything under 1ms fails the positive
// check.
func (c *Config) SetTransactionRollbackTime(d time.Duration) error {
	return c.setPositiveInt64(TransactionRollbackTimeProp, d.Milliseconds())
}

func (c *Config) TransactionRollbackTime() (time.Duration, error) {
	ms, err := c.getPositiveInt64(TransactionRollbackTimeProp, TransactionRollbackTimeDefault)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
