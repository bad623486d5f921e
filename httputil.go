package tracker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/teecush/tracker/logger"
)

// contains http utils to deal with remote services

// defaultClient is used by sources that were not given one.
var defaultClient = &http.Client{Timeout: 30 * time.Second}

// wget performs an HTTP GET request and returns the body of a 200 response.
func wget(ctx context.Context, client *http.Client, addr string) ([]byte, error) {
	if client == nil {
		client = defaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	logger.Get().Debugw("http get", "host", req.URL.Host, "path", req.URL.Path, "status", resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
