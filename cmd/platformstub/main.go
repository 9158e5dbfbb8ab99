package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdeck/internal/stubplatform"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8780", "Listen address for the stub backend")
	taskID := flag.String("task", "task-demo", "Task id the scripted scenario serves")
	flag.Parse()

	server := stubplatform.NewServer(stubplatform.DefaultScenario(*taskID))
	httpServer := &http.Server{
		Addr:    *addr,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	fmt.Printf("Stub platform serving task %s on http://%s\n", *taskID, *addr)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "stub server failed: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}
}
