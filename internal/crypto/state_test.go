package crypto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCopiesOnBoundaries(t *testing.T) {
	src := []byte("mutable")
	s := NewState(src)
	src[0] = 'X'
	assert.Equal(t, []byte("mutable"), s.Snapshot(), "NewState must copy its input")

	snap := s.Snapshot()
	snap[0] = 'Y'
	assert.Equal(t, []byte("mutable"), s.Snapshot(), "Snapshot must return a private copy")
}

func TestStateRestore(t *testing.T) {
	s := NewState([]byte("before"))
	s.Restore([]byte("after"))
	assert.Equal(t, []byte("after"), s.Snapshot())
	assert.Equal(t, 5, s.Len())
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState([]byte("seed"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Restore([]byte("swap"))
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
			_ = s.Len()
		}()
	}
	wg.Wait()
	assert.Equal(t, []byte("swap"), s.Snapshot())
}
