package passvault

import (
	"sync"

	"github.com/davisbra/passvault/internal/crypto"
)

// Handle is an opaque, provider-owned reference to live session state.
// The codec never allocates, frees or inspects a handle; it only borrows
// one from the Session collaborator and passes it back to the provider.
type Handle = any

// Session is the collaborator owning the opaque handle consumed by
// save/load-class operations. Handle returns the current handle and
// whether one is present; absence makes handle-bound operations fail with
// ErrNoHandle.
type Session interface {
	Handle() (Handle, bool)
}

// Provider is the primitive contract consumed by the codec. The methods
// mirror a C-compatible surface: length queries are infallible, mutating
// operations return 0 on success or a negative status code, and
// decrypt-class operations return the number of bytes written (or a
// negative status code). Output buffers are allocated by the caller and
// sized by the codec's sizing policy before each call.
type Provider interface {
	// ExtraLength reports the constant overhead, in bytes, added to a
	// plaintext by every encrypt-class operation.
	ExtraLength() uint32
	// KeyLength reports the symmetric key size in bytes.
	KeyLength() uint32
	// SaltLength reports the key-derivation salt size in bytes.
	SaltLength() uint32

	// EncryptedSize reports the encrypted size of the state behind h.
	EncryptedSize(h Handle) uint32

	PassEncrypt(data, passphrase, out []byte) int32
	PassDecrypt(data, passphrase, out []byte) int64

	DeriveKey(passphrase, out []byte) int32
	DeriveKeyWithSalt(passphrase, salt, out []byte) int32
	GetSalt(data, out []byte) int32

	KeyEncrypt(data, key, out []byte) int32
	KeyDecrypt(data, key, out []byte) int64

	EncryptedSave(h Handle, passphrase, out []byte) int32
	EncryptedLoad(h Handle, data, passphrase []byte) int32
	EncryptedKeySave(h Handle, key, out []byte) int32
	EncryptedKeyLoad(h Handle, data, key []byte) int32

	IsDataEncrypted(data []byte) bool
}

// State is the built-in provider's session state. Values are used as
// opaque handles with the default provider.
type State = crypto.State

// NewState allocates built-in provider session state holding a copy of
// data.
func NewState(data []byte) *State {
	return crypto.NewState(data)
}

// DefaultProvider returns the built-in scrypt/secretbox provider. New uses
// it when no WithProvider option is given.
func DefaultProvider() Provider {
	return crypto.NewProvider()
}

// MemorySession is a minimal in-memory Session. The zero value is a
// session with no handle present. It is safe for concurrent use.
type MemorySession struct {
	mu     sync.RWMutex
	handle Handle
}

// NewMemorySession returns a session whose current handle is h.
func NewMemorySession(h Handle) *MemorySession {
	return &MemorySession{handle: h}
}

// Handle returns the current handle, if any.
func (s *MemorySession) Handle() (Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle, s.handle != nil
}

// SetHandle replaces the current handle.
func (s *MemorySession) SetHandle(h Handle) {
	s.mu.Lock()
	s.handle = h
	s.mu.Unlock()
}

// Clear removes the current handle.
func (s *MemorySession) Clear() {
	s.SetHandle(nil)
}
