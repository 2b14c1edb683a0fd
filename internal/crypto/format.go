package crypto

import "bytes"

// Byte offsets of the blob header fields.
const (
	saltOffset  = MagicLength
	nonceOffset = saltOffset + SaltLength
	boxOffset   = nonceOffset + NonceLength
)

// IsEncrypted reports whether data starts with the provider's format
// marker. It never inspects anything past the magic bytes.
func IsEncrypted(data []byte) bool {
	return len(data) >= MagicLength && bytes.Equal(data[:MagicLength], magic[:])
}

// putHeader writes the magic, salt and nonce into the front of out.
// out must be at least boxOffset bytes.
func putHeader(out, salt []byte, nonce *[NonceLength]byte) {
	copy(out[:MagicLength], magic[:])
	copy(out[saltOffset:nonceOffset], salt)
	copy(out[nonceOffset:boxOffset], nonce[:])
}

// parseHeader splits an encrypted blob into its salt, nonce and sealed box.
// It returns false when the blob is not in the provider's format or is too
// short to contain a complete header and MAC.
func parseHeader(data []byte) (salt []byte, nonce *[NonceLength]byte, box []byte, ok bool) {
	if len(data) < ExtraLength || !IsEncrypted(data) {
		return nil, nil, nil, false
	}
	nonce = new([NonceLength]byte)
	copy(nonce[:], data[nonceOffset:boxOffset])
	return data[saltOffset:nonceOffset], nonce, data[boxOffset:], true
}
