// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps the size of a document accepted by Decode (5 MiB).
const DefaultMaxFileSize int64 = 5 << 20

type (
	decodeConfig struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option adjusts a single Decode call.
	Option func(*decodeConfig)
)

func newDecodeConfig(opts []Option) decodeConfig {
	cfg := decodeConfig{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
		filename:    "<input>",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(c *decodeConfig) { c.maxFileSize = size }
}

// WithConcrete controls whether every value must be concrete after
// unification. The config file passes false since all its fields are
// optional.
func WithConcrete(concrete bool) Option {
	return func(c *decodeConfig) { c.concrete = concrete }
}

// WithFilename names the document in error messages. Empty names are ignored.
func WithFilename(name string) Option {
	return func(c *decodeConfig) {
		if name != "" {
			c.filename = name
		}
	}
}
