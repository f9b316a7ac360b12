package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rregexd/pkg/types"
)

// readEvent reads one SSE frame and returns its data line.
func readEvent(t *testing.T, br *bufio.Reader) string {
	t.Helper()
	var data string
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return data
		}
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestEventsStream(t *testing.T) {
	svc := &mockService{state: types.LoadState{Version: "1.9", Loading: true}}
	srv := httptest.NewServer(NewMux(svc))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content-type=%q", ct)
	}
	br := bufio.NewReader(resp.Body)

	if got := readEvent(t, br); !strings.Contains(got, `"version":"1.9"`) || !strings.Contains(got, `"loading":true`) {
		t.Fatalf("initial event=%q", got)
	}

	// Subscription is registered before the first frame is written.
	svc.setState(types.LoadState{Version: "1.9", Loaded: true})
	if got := readEvent(t, br); !strings.Contains(got, `"loaded":true`) {
		t.Fatalf("update event=%q", got)
	}
}

func TestEventsStream_UnsubscribesOnClose(t *testing.T) {
	svc := &mockService{}
	srv := httptest.NewServer(NewMux(svc))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	readEvent(t, bufio.NewReader(resp.Body))
	cancel()
	resp.Body.Close()

	// The handler returns once the client is gone and drops its subscription.
	deadline := time.Now().Add(2 * time.Second)
	for svc.active() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscription still active")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
