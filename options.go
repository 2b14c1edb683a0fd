package passvault

// codecConfig holds configuration for the codec. It is consumed by New and
// copied into the Codec; nothing mutates it afterwards.
type codecConfig struct {
	provider         Provider
	session          Session
	blockingFallback bool
}

// Option configures the codec.
type Option func(*codecConfig)

// WithProvider sets the primitive provider backing the codec. The default
// is the built-in scrypt/secretbox provider.
func WithProvider(p Provider) Option {
	return func(c *codecConfig) {
		c.provider = p
	}
}

// WithSession sets the session collaborator consulted by handle-bound
// operations. Without a session, save/load-class operations fail with
// ErrNoHandle.
func WithSession(s Session) Option {
	return func(c *codecConfig) {
		c.session = s
	}
}

// WithBlockingFallback controls what the non-blocking convention does when
// no completion handler is supplied. When enabled (the default), the call
// runs the blocking path and returns its result directly. When disabled,
// the operation runs fire-and-forget and the call returns zero values
// immediately.
func WithBlockingFallback(enabled bool) Option {
	return func(c *codecConfig) {
		c.blockingFallback = enabled
	}
}
