package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ChalkTalk/internal/board"
	"ChalkTalk/internal/interpret"
	"ChalkTalk/internal/share"
	"ChalkTalk/internal/ui"
)

const defaultSharePort = 8787

func main() {
	key := flag.String("key", "", "Anthropic API key (defaults to ANTHROPIC_API_KEY)")
	model := flag.String("model", "", "override the tutor model")
	port := flag.Int("port", defaultSharePort, "port for sharing the board with viewers")
	view := flag.String("view", "", "watch a shared board at host:port, or 'auto' to discover one")
	noShare := flag.Bool("no-share", false, "do not publish the board on the local network")
	flag.Parse()

	if *view != "" {
		runViewer(*view)
		return
	}

	apiKey := *key
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		log.Fatal("no API key: pass -key or set ANTHROPIC_API_KEY")
	}
	runHost(apiKey, *model, *port, !*noShare)
}

func runHost(apiKey, model string, port int, shareBoard bool) {
	log.Println("Starting as HOST")
	sess := board.NewSession()
	client := interpret.NewClient(apiKey, model)

	shareLink := ""
	if shareBoard {
		hub := share.NewHub()
		share.Attach(sess, hub)
		go func() {
			if err := share.Serve(port, hub); err != nil {
				log.Printf("share server stopped: %v", err)
			}
		}()

		if server, err := share.Advertise(port); err != nil {
			log.Printf("mDNS advertise failed: %v", err)
		} else {
			defer server.Shutdown()
		}

		if ip, err := share.OutgoingIP(); err == nil {
			shareLink = fmt.Sprintf("%s:%d", ip, port)
		}
	}

	ui.RunApp(ui.Config{
		Session:     sess,
		Interpreter: client,
		ShareLink:   shareLink,
	})
}

func runViewer(target string) {
	log.Println("Starting as VIEWER")
	if target == "auto" {
		addr, err := discoverHost()
		if err != nil {
			log.Fatalf("no shared board found: %v", err)
		}
		target = addr
	}

	sess := board.NewSession()
	go func() {
		// Give the UI time to launch before events start replaying.
		time.Sleep(500 * time.Millisecond)
		if err := share.Watch(context.Background(), target, sess); err != nil {
			log.Printf("viewer connection ended: %v", err)
		}
	}()

	ui.RunApp(ui.Config{
		Session: sess,
		Viewer:  true,
	})
}

func discoverHost() (string, error) {
	log.Println("Looking for a shared board on the local network...")
	found := make(chan string, 1)
	err := share.Browse(func(addr string) {
		select {
		case found <- addr:
		default:
		}
	})
	if err != nil {
		return "", err
	}
	select {
	case addr := <-found:
		log.Printf("Found host at %s", addr)
		return addr, nil
	case <-time.After(3 * time.Second):
		return "", fmt.Errorf("no host advertised itself within 3s")
	}
}
