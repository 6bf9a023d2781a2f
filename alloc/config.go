package alloc

// Config controls pool geometry and validation behavior.
// A nil Config passed to a constructor means DefaultConfig.
type Config struct {
	// PoolSize is the number of bytes reserved per pool acquisition.
	// Must be at least the derived chunk stride.
	PoolSize int

	// Alignment is the baseline chunk alignment in bytes; must be a power
	// of two. Payloads larger than this still get power-of-two strides.
	Alignment int

	// Strict enables ownership validation on Free: freeing a pointer that
	// does not fall inside one of the allocator's pools panics instead of
	// silently corrupting the free list. Costs a scan over the owned pools
	// per Free.
	Strict bool
}

// DefaultConfig is used when no Config is supplied: 64KiB pools,
// cache-line-scale alignment, strict validation on.
var DefaultConfig = Config{
	PoolSize:  64 * 1024,
	Alignment: DefaultAlignment,
	Strict:    true,
}

// validate checks the configuration against the derived requirements.
func (c *Config) validate() error {
	if c.PoolSize <= 0 {
		return ErrSizeMustBePositive
	}
	if !isPow2(c.Alignment) {
		return ErrBadAlignment
	}
	return nil
}
