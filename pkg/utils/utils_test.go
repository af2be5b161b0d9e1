package utils

import (
	"context"
	"testing"
	"time"

	"github.com/anujm4467/trading-journel-sub000/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoSafeRecoversPanic(t *testing.T) {
	done := make(chan struct{})

	GoSafe(func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panicking goroutine never finished")
	}

	// A second call still works after the recovered panic.
	ran := make(chan struct{})
	GoSafe(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("goroutine after recovered panic never ran")
	}
}

func TestShouldContinue(t *testing.T) {
	log, err := logger.New("info", "json")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, ShouldContinue(ctx, log))

	cancel()
	assert.False(t, ShouldContinue(ctx, log))
}
