package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TomSchuu/source-surf/internal/apperrors"
)

type StartClient interface {
	StartServer(ctx context.Context) (string, error)
}

type startClient struct {
	client   *http.Client
	startURL string
}

// StartServer asks the hosting panel to boot the game server. The response
// body is returned for logging only, control decisions depend solely on the
// HTTP status.
func (s *startClient) StartServer(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.startURL, nil)
	if err != nil {
		return "", fmt.Errorf("StartClient.StartServer creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("StartClient.StartServer: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("StartClient.StartServer reading body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("StartClient.StartServer: %w: http %d", apperrors.ErrStartRejected, resp.StatusCode)
	}
	return strings.TrimSpace(string(body)), nil
}

func NewStartClient(startURL string, requestTimeout time.Duration) StartClient {
	return &startClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		startURL: startURL,
	}
}
