// Package passvault provides a passphrase and key based codec for opaque
// binary vaults.
//
// The codec wraps a primitive provider (a fixed set of encrypt, decrypt,
// key-derivation and save/load operations speaking numeric status codes)
// and layers exact output-buffer sizing, a session-handle precondition,
// dual blocking/non-blocking calling conventions and a typed error
// taxonomy on top of it. A pure-Go provider backed by scrypt and NaCl
// secretbox is built in, so the package is usable stand-alone.
//
// Basic usage:
//
//	codec := passvault.New()
//
//	vault, err := codec.PassEncrypt(data, []byte("passphrase"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plain, err := codec.PassDecrypt(vault, []byte("passphrase"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every operation also exists in a non-blocking form taking a completion
// handler as its final argument:
//
//	codec.PassEncryptAsync(data, []byte("passphrase"), func(vault []byte, err error) {
//	    // invoked exactly once
//	})
//
// Save-class operations act on a live session exposed through the Session
// interface and fail with ErrNoHandle when no handle is present:
//
//	session := passvault.NewMemorySession(passvault.NewState(stateBytes))
//	codec = passvault.New(passvault.WithSession(session))
//	vault, err = codec.Save([]byte("passphrase"))
//
// Errors carry their diagnostic fields as typed values; callers branch
// with errors.Is against ErrNoHandle, ErrNonZeroReturn, ErrReturnMismatch
// and ErrInvalidInputLength, or errors.As against the concrete kinds.
package passvault
