package share

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ChalkTalk/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHostEventsReachViewer(t *testing.T) {
	host := board.NewSession()
	hub := NewHub()
	Attach(host, hub)

	srv := httptest.NewServer(hub)
	defer srv.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")
	// The hub serves /ws; httptest mounts the handler at the root, so point
	// Watch at the same handler via the ws path the hub expects.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer := board.NewSession()
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, addr, viewer) }()

	waitFor(t, func() bool { return hub.ViewerCount() == 1 })

	host.Enqueue([]board.Command{board.NewAnnotation("shared", 1, 2)})
	waitFor(t, func() bool { return len(viewer.Commands()) == 1 })
	got := viewer.Commands()[0]
	assert.Equal(t, "shared", got.Annotation.Text)

	host.Clear()
	waitFor(t, func() bool { return len(viewer.Commands()) == 0 })

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("viewer did not shut down")
	}
}

func TestUndoPropagates(t *testing.T) {
	host := board.NewSession()
	hub := NewHub()
	Attach(host, hub)

	srv := httptest.NewServer(hub)
	defer srv.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	viewer := board.NewSession()
	go Watch(ctx, addr, viewer)
	waitFor(t, func() bool { return hub.ViewerCount() == 1 })

	host.Enqueue([]board.Command{board.NewAnnotation("a", 0, 0)})
	host.Enqueue([]board.Command{board.NewAnnotation("b", 0, 0)})
	waitFor(t, func() bool { return len(viewer.Commands()) == 2 })

	require.True(t, host.Undo())
	waitFor(t, func() bool { return len(viewer.Commands()) == 1 })
	assert.Equal(t, "a", viewer.Commands()[0].Annotation.Text)
}
