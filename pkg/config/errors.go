package config

import (
	"errors"
	"fmt"

	"github.com/fluo-io/fluo-go/pkg/props"
)

// The configuration core produces two kinds of failures. Argument errors
// wrap ErrInvalidConfig and are caller correctable: a value outside its
// property's rule, a malformed encoding, or a missing required property.
// Read errors wrap ErrReadFailed and are fatal, since configuration loads
// once at startup and is never retried.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrReadFailed    = errors.New("read failed")
)

// ErrPropertyNotSet reports a read of a required property no layer holds.
// It travels inside an ErrInvalidConfig chain.
var ErrPropertyNotSet = props.ErrKeyNotFound

// invalidf builds an argument error wrapping ErrInvalidConfig.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

func notSetErr(key string) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrPropertyNotSet, key)
}

// IsInvalid reports whether err is an argument error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsFatal reports whether err is a fatal read error.
func IsFatal(err error) bool {
	return errors.Is(err, ErrReadFailed)
}
