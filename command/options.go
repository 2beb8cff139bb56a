package command

import "github.com/gogpu/richtext/resource"

// Option configures a Stream.
type Option func(*streamConfig)

type streamConfig struct {
	capacity int
	registry *resource.Registry
	strict   bool
}

func defaultStreamConfig() streamConfig {
	return streamConfig{capacity: 256}
}

// WithCapacity sets the initial buffer capacity in bytes.
func WithCapacity(bytes int) Option {
	return func(c *streamConfig) {
		if bytes > 0 {
			c.capacity = bytes
		}
	}
}

// WithRegistry makes the stream resolve indices against reg instead of a
// private registry. Several streams may share one registry.
func WithRegistry(reg *resource.Registry) Option {
	return func(c *streamConfig) {
		c.registry = reg
	}
}

// WithStrictNesting makes an unmatched pop panic at write time.
// By default an unmatched pop is only logged.
func WithStrictNesting(strict bool) Option {
	return func(c *streamConfig) {
		c.strict = strict
	}
}
