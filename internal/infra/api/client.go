package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"canteen/internal/repository"
)

// Client はバックエンドAPIの共有クライアント。
// 認可ヘッダとリクエストIDの付与、JSONの符号化、ステータスの
// エラー変換をここに集約する。
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *logrus.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken はログイン後のトークン差し替え。空でクリア。
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// バックエンドのエラー応答 {"message": "..."}
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	res, err := c.httpc.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"request_id": requestID,
		}).WithError(err).Warn("backend request failed")
		return errors.Wrapf(repository.ErrUnavailable, "%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return repository.ErrUnauthorized
	case res.StatusCode == http.StatusForbidden:
		return repository.ErrForbidden
	case res.StatusCode == http.StatusNotFound:
		return repository.ErrNotFound
	case res.StatusCode >= 500:
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"status":     res.StatusCode,
			"request_id": requestID,
		}).Warn("backend error response")
		return errors.Wrapf(repository.ErrUnavailable, "%s %s: status %d", method, path, res.StatusCode)
	case res.StatusCode >= 400:
		var eb errorBody
		_ = json.NewDecoder(res.Body).Decode(&eb)
		if eb.Message == "" {
			eb.Message = http.StatusText(res.StatusCode)
		}
		return errors.Errorf("%s %s: %d %s", method, path, res.StatusCode, eb.Message)
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode response for %s %s", method, path)
	}
	return nil
}
