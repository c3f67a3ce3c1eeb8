package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("function did not run")
	}
}

func TestHandleCrash_NilIsNoOp(t *testing.T) {
	called := false
	remove := PushCrashCleanup(func() { called = true })
	defer remove()

	HandleCrash(nil)
	assert.False(t, called)
}

func TestCrashCleanups_NewestFirst(t *testing.T) {
	var order []string
	removeLog := PushCrashCleanup(func() { order = append(order, "flush log") })
	removeScreen := PushCrashCleanup(func() { order = append(order, "restore terminal") })
	removeGone := PushCrashCleanup(func() { order = append(order, "removed") })
	removeGone()

	runCrashCleanups()
	assert.Equal(t, []string{"restore terminal", "flush log"}, order)

	// Drained: removing afterwards and running again does nothing
	removeLog()
	removeScreen()
	runCrashCleanups()
	assert.Len(t, order, 2)
}
