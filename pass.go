package passvault

// PassEncrypt encrypts data with a key derived from the passphrase. The
// returned vault is exactly ExtraLength bytes longer than data.
func (c *Codec) PassEncrypt(data, passphrase []byte) ([]byte, error) {
	return c.passEncrypt(data, passphrase)
}

// PassEncryptAsync is the non-blocking form of PassEncrypt.
func (c *Codec) PassEncryptAsync(data, passphrase []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.passEncrypt(data, passphrase) }, fn)
}

// PassDecrypt decrypts a vault produced by PassEncrypt (or Save with the
// same provider). The returned plaintext is exactly ExtraLength bytes
// shorter than data.
func (c *Codec) PassDecrypt(data, passphrase []byte) ([]byte, error) {
	return c.passDecrypt(data, passphrase)
}

// PassDecryptAsync is the non-blocking form of PassDecrypt.
func (c *Codec) PassDecryptAsync(data, passphrase []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.passDecrypt(data, passphrase) }, fn)
}

// IsDataEncrypted reports whether data is recognized as a vault produced
// by the provider. There is no error path; unrecognized input is simply
// false.
func (c *Codec) IsDataEncrypted(data []byte) bool {
	return c.provider.IsDataEncrypted(data)
}

// IsDataEncryptedAsync is the non-blocking form of IsDataEncrypted.
func (c *Codec) IsDataEncryptedAsync(data []byte, fn BoolFunc) bool {
	var cb func(bool, error)
	if fn != nil {
		cb = func(v bool, _ error) { fn(v) }
	}
	v, _ := dispatch(c, func() (bool, error) { return c.provider.IsDataEncrypted(data), nil }, cb)
	return v
}

func (c *Codec) passEncrypt(data, passphrase []byte) ([]byte, error) {
	out := make([]byte, ciphertextLength(len(data), c.provider.ExtraLength()))
	if err := classifyStatus(opPassEncrypt, c.provider.PassEncrypt(data, passphrase, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) passDecrypt(data, passphrase []byte) ([]byte, error) {
	size, err := plaintextLength(opPassDecrypt, len(data), c.provider.ExtraLength())
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	n := c.provider.PassDecrypt(data, passphrase, out)
	if err := classifyWritten(opPassDecrypt, n, size); err != nil {
		return nil, err
	}
	return out, nil
}
