package dashserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Config captures the settings for serving the local dashboard.
type Config struct {
	Addr string
}

// Serve hosts the dashboard until the context ends. The caller is
// responsible for feeding the store from a poller.
func Serve(ctx context.Context, cfg Config, store *Store) error {
	if ctx == nil {
		return errors.New("dashserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("dashserver: addr is required")
	}
	handler, err := NewHandler(store)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
