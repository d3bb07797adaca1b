// Container healthcheck probe. Exits 0 when the server's liveness endpoint
// answers with 200, non-zero otherwise, so the orchestrator can restart a
// wedged process.
package main

import (
	"context"
	"net/http"
	"os"
	"time"
)

const probeTimeout = 8 * time.Second

func main() {
	port := os.Getenv("CAREBOT_PORT")
	if port == "" {
		port = "10000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://localhost:"+port+"/healthz", http.NoBody)
	if err != nil {
		os.Exit(1)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		os.Exit(1)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
