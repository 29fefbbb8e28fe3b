package aon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

// Client talks to the Archives of Nethys elasticsearch export: the full uuid
// index plus one JSON document per uuid.
type Client interface {
	FetchIndex(ctx context.Context) (types.UUIDIndex, error)
	FetchGroup(ctx context.Context, uuid string) ([]json.RawMessage, error)
}

type httpClient struct {
	log        *logger.Logger
	indexURL   string
	searchURL  string
	httpClient *http.Client
}

func NewClient(baseLog *logger.Logger, indexURL, searchURL string, timeout time.Duration) Client {
	return &httpClient{
		log:       baseLog.With("service", "AonClient"),
		indexURL:  indexURL,
		searchURL: searchURL,
		// The upstream has no SLA; an unbounded call would pin a request
		// handler for as long as the remote cares to stall.
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) FetchIndex(ctx context.Context) (types.UUIDIndex, error) {
	body, status, err := c.get(ctx, c.indexURL)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("fetch uuid index: %w", err))
	}
	if status != http.StatusOK {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("fetch uuid index: status %d", status))
	}
	var index types.UUIDIndex
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("decode uuid index: %w", err))
	}
	return index, nil
}

func (c *httpClient) FetchGroup(ctx context.Context, uuid string) ([]json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s.json", c.searchURL, uuid)
	body, status, err := c.get(ctx, url)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("fetch group %s: %w", uuid, err))
	}
	if status != http.StatusOK {
		c.log.Warn("Upstream returned non-success for group", "uuid", uuid, "status", status)
		return nil, apierr.UpstreamMissing(uuid)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("decode group %s: %w", uuid, err))
	}
	return items, nil
}

func (c *httpClient) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
