package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"github.com/TomSchuu/source-surf/internal/apperrors"
	"github.com/TomSchuu/source-surf/internal/model"
)

type StatusClient interface {
	GetStatus(ctx context.Context) (model.ServerStatus, error)
}

type statusClient struct {
	client         *http.Client
	statusURL      string
	maxRetries     int
	initialBackoff time.Duration
}

// GetStatus fetches and decodes the game server status payload. Transport
// errors are retried with exponential backoff, except ECONNREFUSED which
// means the server host is reachable but nothing listens there.
func (s *statusClient) GetStatus(ctx context.Context) (model.ServerStatus, error) {
	backoff := s.initialBackoff
	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, s.statusURL, nil)
		if err != nil {
			return model.ServerStatus{}, fmt.Errorf("StatusClient.GetStatus creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		var resp *http.Response
		resp, err = s.client.Do(req)
		if err != nil {
			if errors.Is(err, syscall.ECONNREFUSED) {
				break
			}
			time.Sleep(backoff)
			backoff *= 2
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return model.ServerStatus{}, fmt.Errorf("StatusClient.GetStatus: %w: http %d", apperrors.ErrUpstreamStatus, resp.StatusCode)
		}
		var status model.ServerStatus
		decodeErr := json.NewDecoder(resp.Body).Decode(&status)
		resp.Body.Close()
		if decodeErr != nil {
			return model.ServerStatus{}, fmt.Errorf("StatusClient.GetStatus: %w: %v", apperrors.ErrMalformedStatus, decodeErr)
		}
		return status, nil
	}
	return model.ServerStatus{}, fmt.Errorf("StatusClient.GetStatus: %w", err)
}

func NewStatusClient(statusURL string, maxRetries int, requestTimeout time.Duration, initialBackoff time.Duration) StatusClient {
	return &statusClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		statusURL:      statusURL,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
}
