package memo

import "go.uber.org/zap"

// Config is the resolved configuration of a Memo.
type Config struct {
	// Name identifies the wrapped function in keys and logs.
	// Empty means the function's runtime symbol name.
	Name string

	// Logger receives hit/miss events. Defaults to a no-op logger.
	Logger *zap.Logger

	Key KeyPolicy

	// NilAsAbsent treats a stored nil result (nil interface, pointer, slice,
	// map, chan or func) as missing, so such results are recomputed on every
	// call. CurrSize still counts the key once.
	NilAsAbsent bool
}

// Option configures a Memo.
type Option func(*Config)

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// WithName sets the name used in keys and logs.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithLogger sends hit/miss events to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithKeywordValues includes keyword argument values in the key.
func WithKeywordValues() Option {
	return func(c *Config) { c.Key.KeywordValues = true }
}

// WithStrictKeys makes calls fail with ErrUnkeyable on arguments that are not
// basic kinds and implement neither Keyer nor fmt.Stringer.
func WithStrictKeys() Option {
	return func(c *Config) { c.Key.Strict = true }
}

// WithNilAsAbsent recomputes nil results on every call instead of serving
// them from the store.
func WithNilAsAbsent() Option {
	return func(c *Config) { c.NilAsAbsent = true }
}
