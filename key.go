package passvault

// DeriveKey stretches a passphrase into a KeyLength-byte key under a
// provider-generated salt. Use DeriveKeyWithSalt to reproduce a key for an
// existing vault's salt (see ExtractSalt).
func (c *Codec) DeriveKey(passphrase []byte) ([]byte, error) {
	return c.deriveKey(passphrase)
}

// DeriveKeyAsync is the non-blocking form of DeriveKey.
func (c *Codec) DeriveKeyAsync(passphrase []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.deriveKey(passphrase) }, fn)
}

// DeriveKeyWithSalt stretches a passphrase into a KeyLength-byte key under
// an explicit SaltLength-byte salt. The same passphrase and salt always
// produce the same key.
func (c *Codec) DeriveKeyWithSalt(passphrase, salt []byte) ([]byte, error) {
	return c.deriveKeyWithSalt(passphrase, salt)
}

// DeriveKeyWithSaltAsync is the non-blocking form of DeriveKeyWithSalt.
func (c *Codec) DeriveKeyWithSaltAsync(passphrase, salt []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.deriveKeyWithSalt(passphrase, salt) }, fn)
}

// ExtractSalt reads the key-derivation salt embedded in a vault. The
// result is always exactly SaltLength bytes.
func (c *Codec) ExtractSalt(data []byte) ([]byte, error) {
	return c.extractSalt(data)
}

// ExtractSaltAsync is the non-blocking form of ExtractSalt.
func (c *Codec) ExtractSaltAsync(data []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.extractSalt(data) }, fn)
}

// KeyEncrypt encrypts data with a caller-supplied KeyLength-byte key.
func (c *Codec) KeyEncrypt(data, key []byte) ([]byte, error) {
	return c.keyEncrypt(data, key)
}

// KeyEncryptAsync is the non-blocking form of KeyEncrypt.
func (c *Codec) KeyEncryptAsync(data, key []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.keyEncrypt(data, key) }, fn)
}

// KeyDecrypt decrypts a vault with a caller-supplied KeyLength-byte key.
func (c *Codec) KeyDecrypt(data, key []byte) ([]byte, error) {
	return c.keyDecrypt(data, key)
}

// KeyDecryptAsync is the non-blocking form of KeyDecrypt.
func (c *Codec) KeyDecryptAsync(data, key []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.keyDecrypt(data, key) }, fn)
}

func (c *Codec) deriveKey(passphrase []byte) ([]byte, error) {
	out := make([]byte, c.provider.KeyLength())
	if err := classifyStatus(opDeriveKey, c.provider.DeriveKey(passphrase, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) deriveKeyWithSalt(passphrase, salt []byte) ([]byte, error) {
	out := make([]byte, c.provider.KeyLength())
	if err := classifyStatus(opDeriveKeySalt, c.provider.DeriveKeyWithSalt(passphrase, salt, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) extractSalt(data []byte) ([]byte, error) {
	out := make([]byte, c.provider.SaltLength())
	if err := classifyStatus(opExtractSalt, c.provider.GetSalt(data, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) keyEncrypt(data, key []byte) ([]byte, error) {
	out := make([]byte, ciphertextLength(len(data), c.provider.ExtraLength()))
	if err := classifyStatus(opKeyEncrypt, c.provider.KeyEncrypt(data, key, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) keyDecrypt(data, key []byte) ([]byte, error) {
	size, err := plaintextLength(opKeyDecrypt, len(data), c.provider.ExtraLength())
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	n := c.provider.KeyDecrypt(data, key, out)
	if err := classifyWritten(opKeyDecrypt, n, size); err != nil {
		return nil, err
	}
	return out, nil
}
