package passvault

// Operation names carried in error diagnostics.
const (
	opEncryptedSize = "encrypted-size"
	opPassEncrypt   = "pass-encrypt"
	opPassDecrypt   = "pass-decrypt"
	opSave          = "save"
	opLoad          = "load"
	opDeriveKey     = "derive-key"
	opDeriveKeySalt = "derive-key-with-salt"
	opExtractSalt   = "extract-salt"
	opKeyEncrypt    = "key-encrypt"
	opKeyDecrypt    = "key-decrypt"
	opKeySave       = "key-save"
	opKeyLoad       = "key-load"
)

// Codec is the vault codec facade. It composes the sizing policy, the
// session-handle gate, the dual-mode dispatcher and the error classifier
// over a primitive provider. Configuration is fixed at construction; a
// Codec is safe for concurrent use, with every operation working on its
// own output buffer.
type Codec struct {
	provider         Provider
	session          Session
	blockingFallback bool
}

// New creates a codec. Without options it uses the built-in provider, no
// session and blocking fallback enabled.
func New(opts ...Option) *Codec {
	cfg := &codecConfig{
		blockingFallback: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.provider == nil {
		cfg.provider = DefaultProvider()
	}
	return &Codec{
		provider:         cfg.provider,
		session:          cfg.session,
		blockingFallback: cfg.blockingFallback,
	}
}

// ExtraLength reports the provider's constant encryption overhead in
// bytes.
func (c *Codec) ExtraLength() uint32 { return c.provider.ExtraLength() }

// KeyLength reports the provider's symmetric key size in bytes.
func (c *Codec) KeyLength() uint32 { return c.provider.KeyLength() }

// SaltLength reports the provider's key-derivation salt size in bytes.
func (c *Codec) SaltLength() uint32 { return c.provider.SaltLength() }

// ExtraLengthAsync is the non-blocking form of ExtraLength.
func (c *Codec) ExtraLengthAsync(fn LengthFunc) uint32 {
	return c.lengthQuery(c.provider.ExtraLength, fn)
}

// KeyLengthAsync is the non-blocking form of KeyLength.
func (c *Codec) KeyLengthAsync(fn LengthFunc) uint32 {
	return c.lengthQuery(c.provider.KeyLength, fn)
}

// SaltLengthAsync is the non-blocking form of SaltLength.
func (c *Codec) SaltLengthAsync(fn LengthFunc) uint32 {
	return c.lengthQuery(c.provider.SaltLength, fn)
}

func (c *Codec) lengthQuery(query func() uint32, fn LengthFunc) uint32 {
	var cb func(uint32, error)
	if fn != nil {
		cb = func(v uint32, _ error) { fn(v) }
	}
	v, _ := dispatch(c, func() (uint32, error) { return query(), nil }, cb)
	return v
}

// sessionHandle is the handle gate: it returns the current session handle
// or a NoHandleError naming op. Callers must not touch the provider when
// it fails.
func (c *Codec) sessionHandle(op string) (Handle, error) {
	if c.session == nil {
		return nil, &NoHandleError{Op: op}
	}
	h, ok := c.session.Handle()
	if !ok {
		return nil, &NoHandleError{Op: op}
	}
	return h, nil
}

// EncryptedSize returns the encrypted size of the current session state.
// It requires a session handle.
func (c *Codec) EncryptedSize() (uint32, error) {
	return c.encryptedSize()
}

// EncryptedSizeAsync is the non-blocking form of EncryptedSize.
func (c *Codec) EncryptedSizeAsync(fn SizeFunc) (uint32, error) {
	return dispatch(c, c.encryptedSize, fn)
}

func (c *Codec) encryptedSize() (uint32, error) {
	h, err := c.sessionHandle(opEncryptedSize)
	if err != nil {
		return 0, err
	}
	return c.provider.EncryptedSize(h), nil
}
