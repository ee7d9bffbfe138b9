package share

import (
	"context"
	"fmt"
	"log"

	"ChalkTalk/internal/board"

	"github.com/gorilla/websocket"
)

// Watch connects to a host's share endpoint and replays its board events
// into the local session until the connection drops or ctx is canceled.
func Watch(ctx context.Context, addr string, sess *board.Session) error {
	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect to host %s: %w", addr, err)
	}
	defer conn.Close()
	log.Printf("[share] watching host at %s", addr)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("host connection lost: %w", err)
		}
		switch msg.Type {
		case MessageBatch:
			sess.Enqueue(msg.Commands)
		case MessageUndo:
			sess.Undo()
		case MessageClear:
			sess.Clear()
		default:
			log.Printf("[share] ignoring unknown message type %q", msg.Type)
		}
	}
}
