package crypto

import (
	"crypto/rand"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/nacl/secretbox"
)

// Provider is the built-in primitive provider. It is stateless; all
// session state lives behind *State handles.
type Provider struct{}

// NewProvider returns the built-in provider.
func NewProvider() *Provider {
	return &Provider{}
}

// ExtraLength returns the encryption overhead in bytes.
func (p *Provider) ExtraLength() uint32 { return ExtraLength }

// KeyLength returns the symmetric key size in bytes.
func (p *Provider) KeyLength() uint32 { return KeyLength }

// SaltLength returns the key-derivation salt size in bytes.
func (p *Provider) SaltLength() uint32 { return SaltLength }

// EncryptedSize returns the encrypted size of the state behind h, or 0
// when h is not a handle owned by this provider.
func (p *Provider) EncryptedSize(h any) uint32 {
	s, ok := h.(*State)
	if !ok {
		return 0
	}
	return uint32(s.Len()) + ExtraLength
}

// PassEncrypt encrypts data with a key derived from passphrase under a
// fresh salt, writing the blob into out.
func (p *Provider) PassEncrypt(data, passphrase, out []byte) int32 {
	salt, err := newSalt()
	if err != nil {
		return StatusEntropyFailed
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return StatusKDFFailed
	}
	defer memguard.WipeBytes(key)
	return p.seal(data, key, salt, out)
}

// PassDecrypt re-derives the key from the blob's embedded salt and opens
// the box, writing the plaintext into out. It returns the number of bytes
// written, or a negative status code.
func (p *Provider) PassDecrypt(data, passphrase, out []byte) int64 {
	salt, nonce, box, ok := parseHeader(data)
	if !ok {
		return int64(StatusBadFormat)
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return int64(StatusKDFFailed)
	}
	defer memguard.WipeBytes(key)
	return p.open(box, nonce, key, out)
}

// DeriveKey derives a key from passphrase under a fresh salt and writes it
// into out. The salt is not returned; use DeriveKeyWithSalt to reproduce a
// key from a known salt.
func (p *Provider) DeriveKey(passphrase, out []byte) int32 {
	salt, err := newSalt()
	if err != nil {
		return StatusEntropyFailed
	}
	return p.DeriveKeyWithSalt(passphrase, salt, out)
}

// DeriveKeyWithSalt derives a key from passphrase and an explicit
// SaltLength-byte salt, writing it into out.
func (p *Provider) DeriveKeyWithSalt(passphrase, salt, out []byte) int32 {
	if len(salt) != SaltLength {
		return StatusBadSaltLength
	}
	if len(out) < KeyLength {
		return StatusBufferTooSmall
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return StatusKDFFailed
	}
	copy(out, key)
	memguard.WipeBytes(key)
	return StatusOK
}

// GetSalt copies the salt embedded in an encrypted blob into out.
func (p *Provider) GetSalt(data, out []byte) int32 {
	salt, _, _, ok := parseHeader(data)
	if !ok {
		return StatusBadFormat
	}
	if len(out) < SaltLength {
		return StatusBufferTooSmall
	}
	copy(out, salt)
	return StatusOK
}

// KeyEncrypt encrypts data with a caller-supplied KeyLength-byte key. A
// fresh salt is written into the header so the blob stays parseable, but
// key-based decryption ignores it.
func (p *Provider) KeyEncrypt(data, key, out []byte) int32 {
	if len(key) != KeyLength {
		return StatusBadKeyLength
	}
	salt, err := newSalt()
	if err != nil {
		return StatusEntropyFailed
	}
	return p.seal(data, key, salt, out)
}

// KeyDecrypt opens a blob with a caller-supplied key, ignoring the
// embedded salt. It returns the number of bytes written, or a negative
// status code.
func (p *Provider) KeyDecrypt(data, key, out []byte) int64 {
	if len(key) != KeyLength {
		return int64(StatusBadKeyLength)
	}
	_, nonce, box, ok := parseHeader(data)
	if !ok {
		return int64(StatusBadFormat)
	}
	return p.open(box, nonce, key, out)
}

// EncryptedSave encrypts the state behind h with a passphrase-derived key.
func (p *Provider) EncryptedSave(h any, passphrase, out []byte) int32 {
	s, ok := h.(*State)
	if !ok {
		return StatusBadHandle
	}
	snap := s.Snapshot()
	defer memguard.WipeBytes(snap)
	return p.PassEncrypt(snap, passphrase, out)
}

// EncryptedLoad decrypts a blob with the passphrase and restores the
// plaintext into the state behind h.
func (p *Provider) EncryptedLoad(h any, data, passphrase []byte) int32 {
	s, ok := h.(*State)
	if !ok {
		return StatusBadHandle
	}
	return p.restore(s, data, func(box []byte, nonce *[NonceLength]byte, salt, out []byte) int64 {
		key, err := deriveKey(passphrase, salt)
		if err != nil {
			return int64(StatusKDFFailed)
		}
		defer memguard.WipeBytes(key)
		return p.open(box, nonce, key, out)
	})
}

// EncryptedKeySave encrypts the state behind h with a caller-supplied key.
func (p *Provider) EncryptedKeySave(h any, key, out []byte) int32 {
	s, ok := h.(*State)
	if !ok {
		return StatusBadHandle
	}
	snap := s.Snapshot()
	defer memguard.WipeBytes(snap)
	return p.KeyEncrypt(snap, key, out)
}

// EncryptedKeyLoad decrypts a blob with a caller-supplied key and restores
// the plaintext into the state behind h.
func (p *Provider) EncryptedKeyLoad(h any, data, key []byte) int32 {
	s, ok := h.(*State)
	if !ok {
		return StatusBadHandle
	}
	if len(key) != KeyLength {
		return StatusBadKeyLength
	}
	return p.restore(s, data, func(box []byte, nonce *[NonceLength]byte, _ []byte, out []byte) int64 {
		return p.open(box, nonce, key, out)
	})
}

// IsDataEncrypted reports whether data carries the provider's format
// marker.
func (p *Provider) IsDataEncrypted(data []byte) bool {
	return IsEncrypted(data)
}

// seal writes a complete blob (header plus sealed box) into out.
func (p *Provider) seal(data, key, salt, out []byte) int32 {
	if len(out) < len(data)+ExtraLength {
		return StatusBufferTooSmall
	}
	var nonce [NonceLength]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return StatusEntropyFailed
	}
	putHeader(out, salt, &nonce)
	var k [KeyLength]byte
	copy(k[:], key)
	defer memguard.WipeBytes(k[:])
	secretbox.Seal(out[boxOffset:boxOffset], data, &nonce, &k)
	return StatusOK
}

// open authenticates and decrypts a sealed box into out, returning the
// number of plaintext bytes written or a negative status code.
func (p *Provider) open(box []byte, nonce *[NonceLength]byte, key, out []byte) int64 {
	if len(box) < MACLength {
		return int64(StatusBadFormat)
	}
	if len(out) < len(box)-MACLength {
		return int64(StatusBufferTooSmall)
	}
	var k [KeyLength]byte
	copy(k[:], key)
	defer memguard.WipeBytes(k[:])
	plain, ok := secretbox.Open(out[:0], box, nonce, &k)
	if !ok {
		return int64(StatusAuthFailed)
	}
	return int64(len(plain))
}

// restore decrypts a blob into a scratch buffer via openFn and, only on
// success, replaces the state behind s with the plaintext.
func (p *Provider) restore(s *State, data []byte, openFn func(box []byte, nonce *[NonceLength]byte, salt, out []byte) int64) int32 {
	salt, nonce, box, ok := parseHeader(data)
	if !ok {
		return StatusBadFormat
	}
	out := make([]byte, len(box)-MACLength)
	n := openFn(box, nonce, salt, out)
	if n < 0 {
		return int32(n)
	}
	s.Restore(out[:n])
	memguard.WipeBytes(out)
	return StatusOK
}
