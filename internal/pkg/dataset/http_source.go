package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"Pulseboard/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// HTTPSource 从四个 URL 下载 CSV
type HTTPSource struct {
	client *resty.Client
	urls   map[Kind]string
}

func NewHTTPSource(urls map[Kind]string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTransport(logger.NewHTTPTransport()).
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv")
	return &HTTPSource{client: client, urls: urls}
}

func (s *HTTPSource) Name() string {
	return "http"
}

func (s *HTTPSource) Open(ctx context.Context, kind Kind) (io.ReadCloser, error) {
	url := s.urls[kind]
	if url == "" {
		return nil, ErrMissing
	}
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrMissing
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: %s", kind, resp.Status())
	}
	return io.NopCloser(bytes.NewReader(resp.Body())), nil
}
