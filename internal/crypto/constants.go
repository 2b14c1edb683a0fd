package crypto

import "golang.org/x/crypto/nacl/secretbox"

const (
	// MagicLength is the size of the format marker at the start of every
	// encrypted blob.
	MagicLength = 8
	// SaltLength is the size of the key-derivation salt embedded in every
	// encrypted blob.
	SaltLength = 32
	// KeyLength is the size of a derived or caller-supplied symmetric key.
	KeyLength = 32
	// NonceLength is the size of the XSalsa20 nonce.
	NonceLength = 24
	// MACLength is the size of the Poly1305 authentication tag.
	MACLength = secretbox.Overhead

	// ExtraLength is the total overhead added to a plaintext by any
	// encrypt-class operation: magic, salt, nonce and MAC.
	ExtraLength = MagicLength + SaltLength + NonceLength + MACLength
)

// scrypt cost parameters. Interactive-grade: derivation stays well under a
// second while remaining expensive to brute-force.
const (
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// magic marks a blob as produced by this provider.
var magic = [MagicLength]byte{'P', 'V', 'L', 'T', 'S', 'A', 'V', '1'}

// Status codes returned by provider operations. Zero is success; decrypt
// class operations return a non-negative byte count instead.
const (
	StatusOK             int32 = 0
	StatusBadFormat      int32 = -1
	StatusAuthFailed     int32 = -2
	StatusBufferTooSmall int32 = -3
	StatusBadKeyLength   int32 = -4
	StatusBadSaltLength  int32 = -5
	StatusBadHandle      int32 = -6
	StatusEntropyFailed  int32 = -7
	StatusKDFFailed      int32 = -8
)
