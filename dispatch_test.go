package passvault

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both calling conventions on the same operation and inputs must produce
// identical success values and identical error kinds.
func TestConventionEquivalence(t *testing.T) {
	data := []byte("payload")
	pass := []byte("pw")

	t.Run("success", func(t *testing.T) {
		c := New(WithProvider(newFakeProvider()))

		blocking, err := c.PassEncrypt(data, pass)
		require.NoError(t, err)

		type outcome struct {
			data []byte
			err  error
		}
		done := make(chan outcome, 1)
		_, _ = c.PassEncryptAsync(data, pass, func(out []byte, err error) {
			done <- outcome{out, err}
		})
		async := <-done
		require.NoError(t, async.err)
		assert.Equal(t, blocking, async.data)
	})

	t.Run("error", func(t *testing.T) {
		fake := newFakeProvider()
		fake.statusCode = -2
		c := New(WithProvider(fake))

		_, blockingErr := c.PassEncrypt(data, pass)
		require.ErrorIs(t, blockingErr, ErrNonZeroReturn)

		done := make(chan error, 1)
		_, _ = c.PassEncryptAsync(data, pass, func(_ []byte, err error) { done <- err })
		asyncErr := <-done
		require.ErrorIs(t, asyncErr, ErrNonZeroReturn)

		var a, b *NonZeroReturnError
		require.ErrorAs(t, blockingErr, &a)
		require.ErrorAs(t, asyncErr, &b)
		assert.Equal(t, a.Op, b.Op)
		assert.Equal(t, a.Code, b.Code)
	})
}

// With no handler and blocking fallback enabled (the default), the
// non-blocking convention returns the blocking result directly.
func TestNilHandlerBlockingFallback(t *testing.T) {
	c := New(WithProvider(newFakeProvider()))
	data := []byte("payload")
	pass := []byte("pw")

	blocking, err := c.PassEncrypt(data, pass)
	require.NoError(t, err)

	async, err := c.PassEncryptAsync(data, pass, nil)
	require.NoError(t, err)
	assert.Equal(t, blocking, async)
}

// With no handler and fallback disabled, the call returns zero values
// immediately; the operation still runs to completion in the background.
func TestNilHandlerFireAndForget(t *testing.T) {
	fake := newFakeProvider()
	c := New(WithProvider(fake), WithBlockingFallback(false))

	out, err := c.PassEncryptAsync([]byte("payload"), []byte("pw"), nil)
	assert.Nil(t, out)
	assert.NoError(t, err)

	require.Eventually(t, func() bool {
		return fake.callCount("PassEncrypt") == 1
	}, time.Second, time.Millisecond)
}

func TestNilHandlerFireAndForgetDone(t *testing.T) {
	fake := newFakeProvider()
	session := NewMemorySession("handle")
	c := New(WithProvider(fake), WithSession(session), WithBlockingFallback(false))

	blob := append(append([]byte{}, fakeTag[:]...), []byte("state")...)
	err := c.LoadAsync(blob, []byte("pw"), nil)
	assert.NoError(t, err)

	require.Eventually(t, func() bool {
		return fake.callCount("EncryptedLoad") == 1
	}, time.Second, time.Millisecond)
}

func TestHandlerInvokedExactlyOnce(t *testing.T) {
	c := New(WithProvider(newFakeProvider()))

	var count atomic.Int32
	done := make(chan struct{}, 1)
	_, _ = c.PassEncryptAsync([]byte("payload"), []byte("pw"), func(_ []byte, _ error) {
		count.Add(1)
		done <- struct{}{}
	})

	<-done
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

// The predicate's non-blocking form mirrors the same decision rule even
// though it has no error path.
func TestPredicateConventions(t *testing.T) {
	fake := newFakeProvider()
	c := New(WithProvider(fake))

	blob := append(append([]byte{}, fakeTag[:]...), 1, 2, 3)
	assert.True(t, c.IsDataEncrypted(blob))
	assert.True(t, c.IsDataEncryptedAsync(blob, nil))

	got := make(chan bool, 1)
	c.IsDataEncryptedAsync(blob, func(v bool) { got <- v })
	assert.True(t, <-got)

	assert.False(t, c.IsDataEncrypted([]byte("plain text")))
}
