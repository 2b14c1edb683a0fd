package passvault

// Save encrypts the current session state with a passphrase-derived key.
// The output buffer is sized by a provider encrypted-size round trip for
// the current handle, issued strictly before the save call.
func (c *Codec) Save(passphrase []byte) ([]byte, error) {
	return c.save(passphrase)
}

// SaveAsync is the non-blocking form of Save.
func (c *Codec) SaveAsync(passphrase []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.save(passphrase) }, fn)
}

// Load decrypts a vault with the passphrase and restores the plaintext
// into the current session state in place.
func (c *Codec) Load(data, passphrase []byte) error {
	return c.load(data, passphrase)
}

// LoadAsync is the non-blocking form of Load.
func (c *Codec) LoadAsync(data, passphrase []byte, fn DoneFunc) error {
	return dispatchDone(c, func() error { return c.load(data, passphrase) }, fn)
}

// KeySave encrypts the current session state with a caller-supplied key.
func (c *Codec) KeySave(key []byte) ([]byte, error) {
	return c.keySave(key)
}

// KeySaveAsync is the non-blocking form of KeySave.
func (c *Codec) KeySaveAsync(key []byte, fn DataFunc) ([]byte, error) {
	return dispatch(c, func() ([]byte, error) { return c.keySave(key) }, fn)
}

// KeyLoad decrypts a vault with a caller-supplied key and restores the
// plaintext into the current session state in place.
func (c *Codec) KeyLoad(data, key []byte) error {
	return c.keyLoad(data, key)
}

// KeyLoadAsync is the non-blocking form of KeyLoad.
func (c *Codec) KeyLoadAsync(data, key []byte, fn DoneFunc) error {
	return dispatchDone(c, func() error { return c.keyLoad(data, key) }, fn)
}

func (c *Codec) save(passphrase []byte) ([]byte, error) {
	h, err := c.sessionHandle(opSave)
	if err != nil {
		return nil, err
	}
	out := make([]byte, c.provider.EncryptedSize(h))
	if err := classifyStatus(opSave, c.provider.EncryptedSave(h, passphrase, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) load(data, passphrase []byte) error {
	h, err := c.sessionHandle(opLoad)
	if err != nil {
		return err
	}
	return classifyStatus(opLoad, c.provider.EncryptedLoad(h, data, passphrase))
}

func (c *Codec) keySave(key []byte) ([]byte, error) {
	h, err := c.sessionHandle(opKeySave)
	if err != nil {
		return nil, err
	}
	out := make([]byte, c.provider.EncryptedSize(h))
	if err := classifyStatus(opKeySave, c.provider.EncryptedKeySave(h, key, out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) keyLoad(data, key []byte) error {
	h, err := c.sessionHandle(opKeyLoad)
	if err != nil {
		return err
	}
	return classifyStatus(opKeyLoad, c.provider.EncryptedKeyLoad(h, data, key))
}
