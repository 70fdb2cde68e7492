package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

// HTTPTransport 记录外部数据源的 HTTP 请求
type HTTPTransport struct {
	Transport http.RoundTripper
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{Transport: http.DefaultTransport}
}

func (t *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "HTTP_FETCH_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	// CSV 内容只截取开头用于排查表头问题
	limit := 200
	var resBody []byte
	if resp.Body != nil {
		resBody, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewBuffer(resBody))
	}

	head := string(resBody)
	if len(head) > limit {
		head = head[:limit] + "...[truncated]"
	}
	fields = append(fields,
		log.Int("status", resp.StatusCode),
		log.Int("bytes", len(resBody)),
		log.String("res_head", head),
	)

	if elapsed > 2*time.Second {
		log.WarnContext(req.Context(), "HTTP_FETCH_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "HTTP_FETCH", fields...)
	}

	return resp, nil
}
