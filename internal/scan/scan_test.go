package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartThenDone(t *testing.T) {
	m := New(10*time.Millisecond, 47)
	require.Equal(t, Idle, m.State())
	require.Equal(t, 0, m.Progress())

	started, cmd := m.Start(context.Background())
	require.True(t, started)
	require.NotNil(t, cmd)
	assert.True(t, m.Scanning())
	assert.Equal(t, 47, m.Progress())

	msg := cmd()
	done, ok := msg.(DoneMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, m.Gen(), done.Gen)

	assert.True(t, m.Handle(msg))
	assert.False(t, m.Scanning())
	assert.Equal(t, 0, m.Progress())
}

func TestSecondStartIsNoop(t *testing.T) {
	m := New(time.Hour, 47)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started, cmd := m.Start(ctx)
	require.True(t, started)
	gen := m.Gen()

	again, second := m.Start(ctx)
	assert.False(t, again)
	assert.Nil(t, second)
	assert.Equal(t, gen, m.Gen())
	assert.True(t, m.Scanning())

	cancel()
	msg := cmd()
	assert.IsType(t, CanceledMsg{}, msg)
	assert.True(t, m.Handle(msg))
	assert.False(t, m.Scanning())
}

func TestWaitReturnsPromptlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cmd := Wait(ctx, time.Hour, 1)

	out := make(chan any, 1)
	go func() { out <- cmd() }()
	cancel()

	select {
	case msg := <-out:
		canceled, ok := msg.(CanceledMsg)
		require.True(t, ok, "got %T", msg)
		assert.ErrorIs(t, canceled.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("timer did not observe cancellation")
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	m := New(time.Hour, 47)
	_, cmd := m.Start(context.Background())
	stale := m.Gen()

	require.True(t, m.Stop())
	assert.False(t, m.Scanning())

	// Stop cancelled the first timer, so its command returns immediately.
	msg := cmd()
	assert.Equal(t, CanceledMsg{Gen: stale, Err: context.Canceled}, msg)

	_, cmd2 := m.Start(context.Background())
	assert.False(t, m.Handle(DoneMsg{Gen: stale}))
	assert.True(t, m.Scanning())

	require.True(t, m.Stop())
	_ = cmd2()
}

func TestHandleIgnoresForeignMessages(t *testing.T) {
	m := New(0, 200)
	assert.Equal(t, DefaultDelay, m.Delay())
	assert.False(t, m.Handle("tick"))
	assert.False(t, m.Handle(DoneMsg{Gen: 0}))
	assert.False(t, m.Stop())

	started, cmd := m.Start(context.Background())
	require.True(t, started)
	assert.Equal(t, DefaultProgress, m.Progress())
	m.Stop()
	_ = cmd()
}
