package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("build")
	assert.Equal(t, "build-1", g.Generate())
	assert.Equal(t, "build-2", g.Generate())
	assert.Equal(t, int64(2), g.Issued())

	g.Reset()
	assert.Equal(t, int64(0), g.Issued())
	assert.Equal(t, "build-1", g.Generate())
}

func TestSequenceGeneratorDefaultPrefix(t *testing.T) {
	assert.Equal(t, "spawn-1", NewSequenceGenerator("").Generate())
}

func TestSequenceGeneratorThreadSafe(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewSequenceGenerator("x")
	const numGoroutines = 50
	const callsPerGoroutine = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)

	wg.Add(numGoroutines)
	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range callsPerGoroutine {
				tok := g.Generate()
				mu.Lock()
				seen[tok] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, numGoroutines*callsPerGoroutine, "tokens must be unique")
	assert.Equal(t, int64(numGoroutines*callsPerGoroutine), g.Issued())
}
