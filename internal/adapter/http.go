package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/securedesk/secure-desk/models"
)

// HTTPClientConfig configures [NewHTTPVaultClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpVaultClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPVaultClient builds a [VaultClient] speaking the secure-desk REST
// protocol. An empty base URL defaults to the local development server.
func NewHTTPVaultClient(cfg HTTPClientConfig) VaultClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultClient{client: cli}
}

func (h *httpVaultClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpVaultClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpVaultClient) Stats(ctx context.Context) (models.ItemCounts, error) {
	resp, err := h.authedRequest(ctx).Get("/api/stats")
	if err != nil {
		return models.ItemCounts{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemCounts{}, err
	}

	var counts models.ItemCounts
	if err = json.Unmarshal(resp.Body(), &counts); err != nil {
		return models.ItemCounts{}, fmt.Errorf("decode stats response: %w", err)
	}
	return counts, nil
}

func (h *httpVaultClient) Credentials() RecordAPI[models.Credential] {
	return recordAPI[models.Credential]{client: h, basePath: "/api/credentials"}
}

func (h *httpVaultClient) Cards() RecordAPI[models.BankCard] {
	return recordAPI[models.BankCard]{client: h, basePath: "/api/cards"}
}

func (h *httpVaultClient) BankDetails() RecordAPI[models.BankDetail] {
	return recordAPI[models.BankDetail]{client: h, basePath: "/api/bank-details"}
}

func (h *httpVaultClient) Documents() RecordAPI[models.Document] {
	return recordAPI[models.Document]{client: h, basePath: "/api/documents"}
}

func (h *httpVaultClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// recordAPI implements [RecordAPI] for one collection path.
type recordAPI[T any] struct {
	client   *httpVaultClient
	basePath string
}

func (r recordAPI[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	resp, err := r.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(r.basePath + "/")
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var created T
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return zero, fmt.Errorf("decode create response: %w", err)
	}
	return created, nil
}

func (r recordAPI[T]) List(ctx context.Context) ([]T, error) {
	resp, err := r.client.authedRequest(ctx).Get(r.basePath + "/")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return items, nil
}

func (r recordAPI[T]) Update(ctx context.Context, recordID string, fields map[string]string) (T, error) {
	var zero T

	resp, err := r.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Patch(r.basePath + "/" + recordID)
	if err != nil {
		return zero, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var updated T
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return zero, fmt.Errorf("decode update response: %w", err)
	}
	return updated, nil
}

func (r recordAPI[T]) Delete(ctx context.Context, recordID string) error {
	resp, err := r.client.authedRequest(ctx).Delete(r.basePath + "/" + recordID)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}
