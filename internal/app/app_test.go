package app

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/encounter-types/internal/config"
	"testing"
	"time"
)

func TestServiceRunReturnsWhenContextIsDone(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Port: "0"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		NewService(cfg).Run(ctx, chi.NewRouter())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop after cancellation")
	}
}
