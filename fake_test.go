package passvault

import "sync"

// fakeProvider is a deterministic, instrumented provider for exercising
// the facade without real cryptography. Encrypt-class operations prepend a
// 4-byte tag; decrypt-class operations strip it. Every call is counted so
// tests can assert that gated or rejected operations never reach the
// provider.
type fakeProvider struct {
	mu    sync.Mutex
	calls map[string]int

	statusCode   int32 // returned by mutating ops when non-zero
	writtenDelta int64 // skews decrypt-class byte counts
	encSize      uint32
}

const fakeExtra = 4

var fakeTag = [fakeExtra]byte{'F', 'A', 'K', 'E'}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{calls: make(map[string]int), encSize: 20}
}

func (f *fakeProvider) record(op string) {
	f.mu.Lock()
	f.calls[op]++
	f.mu.Unlock()
}

func (f *fakeProvider) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeProvider) mutatingCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for op, count := range f.calls {
		switch op {
		case "ExtraLength", "KeyLength", "SaltLength":
		default:
			n += count
		}
	}
	return n
}

func (f *fakeProvider) ExtraLength() uint32 { f.record("ExtraLength"); return fakeExtra }
func (f *fakeProvider) KeyLength() uint32   { f.record("KeyLength"); return 8 }
func (f *fakeProvider) SaltLength() uint32  { f.record("SaltLength"); return 6 }

func (f *fakeProvider) EncryptedSize(h Handle) uint32 {
	f.record("EncryptedSize")
	return f.encSize
}

func (f *fakeProvider) seal(data, out []byte) int32 {
	if f.statusCode != 0 {
		return f.statusCode
	}
	copy(out, fakeTag[:])
	copy(out[fakeExtra:], data)
	return 0
}

func (f *fakeProvider) open(data, out []byte) int64 {
	if f.statusCode != 0 {
		return int64(f.statusCode)
	}
	copy(out, data[fakeExtra:])
	return int64(len(data)-fakeExtra) + f.writtenDelta
}

func (f *fakeProvider) fill(out []byte, b byte) int32 {
	if f.statusCode != 0 {
		return f.statusCode
	}
	for i := range out {
		out[i] = b
	}
	return 0
}

func (f *fakeProvider) PassEncrypt(data, passphrase, out []byte) int32 {
	f.record("PassEncrypt")
	return f.seal(data, out)
}

func (f *fakeProvider) PassDecrypt(data, passphrase, out []byte) int64 {
	f.record("PassDecrypt")
	return f.open(data, out)
}

func (f *fakeProvider) DeriveKey(passphrase, out []byte) int32 {
	f.record("DeriveKey")
	return f.fill(out, 0x11)
}

func (f *fakeProvider) DeriveKeyWithSalt(passphrase, salt, out []byte) int32 {
	f.record("DeriveKeyWithSalt")
	return f.fill(out, 0x22)
}

func (f *fakeProvider) GetSalt(data, out []byte) int32 {
	f.record("GetSalt")
	return f.fill(out, 0x33)
}

func (f *fakeProvider) KeyEncrypt(data, key, out []byte) int32 {
	f.record("KeyEncrypt")
	return f.seal(data, out)
}

func (f *fakeProvider) KeyDecrypt(data, key, out []byte) int64 {
	f.record("KeyDecrypt")
	return f.open(data, out)
}

func (f *fakeProvider) EncryptedSave(h Handle, passphrase, out []byte) int32 {
	f.record("EncryptedSave")
	return f.fill(out, 0xAB)
}

func (f *fakeProvider) EncryptedLoad(h Handle, data, passphrase []byte) int32 {
	f.record("EncryptedLoad")
	return f.statusCode
}

func (f *fakeProvider) EncryptedKeySave(h Handle, key, out []byte) int32 {
	f.record("EncryptedKeySave")
	return f.fill(out, 0xCD)
}

func (f *fakeProvider) EncryptedKeyLoad(h Handle, data, key []byte) int32 {
	f.record("EncryptedKeyLoad")
	return f.statusCode
}

func (f *fakeProvider) IsDataEncrypted(data []byte) bool {
	f.record("IsDataEncrypted")
	return len(data) >= fakeExtra && string(data[:fakeExtra]) == string(fakeTag[:])
}
