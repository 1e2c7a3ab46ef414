package flatten

import "github.com/signadot/pegfold/debug"

// DuplicatePolicy selects what happens when two multi-entry mappings hold
// different values under the same key.
type DuplicatePolicy int

const (
	// FailOnDuplicate reports a DuplicateKeysError.
	FailOnDuplicate DuplicatePolicy = iota
	// KeepLatest keeps the right-hand value and emits a warning.
	KeepLatest
)

func (p DuplicatePolicy) String() string {
	switch p {
	case FailOnDuplicate:
		return "fail"
	case KeepLatest:
		return "keep-latest"
	}
	return "<unknown policy>"
}

type Config struct {
	Duplicates DuplicatePolicy
	Warnf      func(format string, args ...any)
}

type Option func(*Config)

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *Config) { c.Duplicates = p }
}

func WithWarnf(f func(format string, args ...any)) Option {
	return func(c *Config) { c.Warnf = f }
}

func newConfig(opts []Option) *Config {
	c := &Config{Warnf: debug.Logf}
	for _, opt := range opts {
		opt(c)
	}
	if c.Warnf == nil {
		c.Warnf = func(string, ...any) {}
	}
	return c
}
