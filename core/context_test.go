package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(ctx), "Goroutine %d: shouldSuppressHeader should be true", id)
		}(i)
	}
	wg.Wait()
}

// TestContextIsolation tests that deriving a context leaves the parent untouched.
func TestContextIsolation(t *testing.T) {
	base := context.Background()
	suppressed := WithSuppressHeader(base)

	assert.False(t, shouldSuppressHeader(base))
	assert.True(t, shouldSuppressHeader(suppressed))

	// A foreign value under the same key type is ignored.
	wrongType := context.WithValue(base, suppressHeaderKey, "yes")
	assert.False(t, shouldSuppressHeader(wrongType))
}
