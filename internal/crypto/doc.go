// Package crypto implements the built-in primitive provider for the
// passvault codec.
//
// The provider speaks the codec's numeric-status contract: mutating
// operations return 0 on success or a negative status code, and
// decrypt-class operations return the number of plaintext bytes written.
// The facade package translates those values into typed errors; nothing in
// this package returns a Go error across the provider boundary.
//
// Encrypted blobs use a fixed layout:
//
//	magic(8) || salt(32) || nonce(24) || box(plaintext || mac(16))
//
// Keys are derived from passphrases with scrypt and sealing uses
// XSalsa20-Poly1305 (NaCl secretbox). Intermediate key material is wiped
// after use.
package crypto
