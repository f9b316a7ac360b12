package manager

import (
	"context"
	"testing"
	"time"

	"rregexd/pkg/types"
)

// When the in-flight slot is held, a second caller should time out with tooBusy.
func TestBeginExecTimesOutWhenBusy(t *testing.T) {
	m := NewWithConfig(ManagerConfig{MaxQueueDepth: 2, MaxWait: 50 * time.Millisecond})
	release, err := m.beginExec(context.Background(), "1.10")
	if err != nil {
		t.Fatalf("first beginExec: %v", err)
	}
	defer release()

	_, err = m.beginExec(context.Background(), "1.10")
	if !IsTooBusy(err) {
		t.Fatalf("expected tooBusy, got %v", err)
	}
	if got := len(m.slotsFor("1.10").queueCh); got != 1 {
		t.Fatalf("queue slot leaked: len=%d", got)
	}
}

func TestBeginExecQueueFull(t *testing.T) {
	m := NewWithConfig(ManagerConfig{MaxQueueDepth: 1, MaxWait: 20 * time.Millisecond})
	release, err := m.beginExec(context.Background(), "1.10")
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	if _, err := m.beginExec(context.Background(), "1.10"); !IsTooBusy(err) {
		t.Fatalf("expected tooBusy on full queue, got %v", err)
	}
}

func TestBeginExecContextCanceled(t *testing.T) {
	m := NewWithConfig(ManagerConfig{MaxQueueDepth: 2, MaxWait: time.Second})
	release, err := m.beginExec(context.Background(), "1.10")
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.beginExec(ctx, "1.10"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBeginExecVersionsIndependent(t *testing.T) {
	m := NewWithConfig(ManagerConfig{MaxQueueDepth: 1, MaxWait: 20 * time.Millisecond})
	r1, err := m.beginExec(context.Background(), "1.9")
	if err != nil {
		t.Fatal(err)
	}
	defer r1()
	r2, err := m.beginExec(context.Background(), "1.10")
	if err != nil {
		t.Fatalf("other version should not be blocked: %v", err)
	}
	r2()
}

func TestExecTooBusy(t *testing.T) {
	h := &fakeHandle{version: "1.10", block: make(chan struct{})}
	open := func(ctx context.Context, v types.Version) (Handle, error) { return h, nil }
	m := NewWithConfig(ManagerConfig{Registry: testRegistry("1.10"), Open: open, MaxQueueDepth: 1, MaxWait: 20 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := m.Exec(context.Background(), types.ExecRequest{Regex: "abc"})
		done <- err
	}()
	waitFor(t, func() bool { return h.calls.Load() > 0 })

	if _, err := m.Exec(context.Background(), types.ExecRequest{Regex: "abc"}); !IsTooBusy(err) {
		t.Fatalf("expected tooBusy, got %v", err)
	}
	close(h.block)
	if err := <-done; err != nil {
		t.Fatalf("first exec: %v", err)
	}
}
