package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// serve runs srv on ln until stop fires, then shuts it down gracefully.
// It returns only after Shutdown has finished draining in-flight requests.
func serve(srv *http.Server, ln net.Listener, stop <-chan os.Signal, drainTimeout time.Duration) error {
	shutdown := make(chan error, 1)
	go func() {
		sig := <-stop
		log.WithField("signal", sig.String()).Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		shutdown <- srv.Shutdown(ctx)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdown
}
