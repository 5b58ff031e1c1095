// Package health serves a small JSON status endpoint for process supervisors.
package health

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"rissy-bot/internal/version"

	"github.com/gin-gonic/gin"
)

// Status is what the endpoint reports on.
type Status interface {
	Ready() bool
	Latency() time.Duration
}

// Handler returns the gin engine serving GET /status.
func Handler(st Status) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/status", func(c *gin.Context) {
		status, code := "offline", http.StatusServiceUnavailable
		if st.Ready() {
			status, code = "online", http.StatusOK
		}
		c.JSON(code, gin.H{
			"status":     status,
			"app":        version.AppName,
			"version":    version.String(),
			"latency_ms": st.Latency().Milliseconds(),
		})
	})

	return r
}

// RunServer serves the status endpoint on addr until ctx is cancelled.
func RunServer(ctx context.Context, addr string, st Status) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(st),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down status server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	log.Printf("[INFO] Status server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		// A dead status endpoint must not take the bot down with it.
		log.Printf("[ERR] Status server exited: %v", err)
	}
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
