package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		calls    int
		wantPass int
	}{
		{"burst allows initial requests", 3, 3, 3},
		{"exceeding burst blocks", 2, 5, 2},
		{"single request", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.limit, time.Hour)
			defer l.Stop()

			passed := 0
			for range tt.calls {
				if l.Allow("client") {
					passed++
				}
			}
			assert.Equal(t, tt.wantPass, passed)
		})
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Hour)
	defer l.Stop()

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.True(t, l.Allow(""))
	assert.False(t, l.Allow(""))
	assert.Equal(t, 3, l.Len())
}

func TestLimiter_Refill(t *testing.T) {
	l := New(2, time.Second)
	defer l.Stop()

	now := time.Now()
	l.now = func() time.Time { return now }
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"))
}

func TestLimiter_Evict(t *testing.T) {
	l := New(5, time.Second)
	defer l.Stop()

	now := time.Now()
	l.now = func() time.Time { return now }
	l.Allow("old")
	now = now.Add(5 * time.Second)
	l.Allow("new")
	now = now.Add(6 * time.Second)

	l.Evict()
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Nil(t *testing.T) {
	var l *Limiter
	assert.True(t, l.Allow("x"))
	l.Stop()
}

func TestLimiter_Concurrent(t *testing.T) {
	l := New(50, time.Hour)
	defer l.Stop()

	var passed atomic.Int32
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				passed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(50), passed.Load())
}
