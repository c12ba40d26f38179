// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout. When
// appCfg.HashKey is set every request body is signed in the HashSHA256
// header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating http server adapter")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", models.User{Login: user.Login, Name: user.Name, Password: user.Password})
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/user/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", models.User{Login: user.Login, Password: user.Password})
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	req, err := h.signedRequest(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

// Synchronize implements [ServerAdapter]. It POSTs the request to
// /api/camp/sync. A 503 answer is the server's RETRY and is returned as a
// response, not an error.
func (h *httpServerAdapter) Synchronize(ctx context.Context, syncReq models.SyncRequest) (models.SyncResponse, error) {
	req, err := h.signedRequest(ctx, syncReq)
	if err != nil {
		return models.SyncResponse{}, err
	}

	var result models.SyncResponse
	resp, err := h.authorize(req).
		SetResult(&result).
		Post("/api/camp/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if resp.StatusCode() == http.StatusServiceUnavailable {
		h.logger.Debug().Str("func", "*httpServerAdapter.Synchronize").Str("camp_id", syncReq.CampID).Msg("server asked to retry")
		return models.SyncResponse{Status: models.SyncRetry}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	return result, nil
}

// GetCamp implements [ServerAdapter] with GET /api/camp/{campID}.
func (h *httpServerAdapter) GetCamp(ctx context.Context, campID string) (*models.Camp, error) {
	var snapshot models.Camp
	resp, err := h.authorize(h.client.R().SetContext(ctx)).
		SetPathParam("campID", campID).
		SetResult(&snapshot).
		Get("/api/camp/{campID}")
	if err != nil {
		return nil, fmt.Errorf("get camp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// ListCamps implements [ServerAdapter] with GET /api/user/camps.
func (h *httpServerAdapter) ListCamps(ctx context.Context) ([]models.CampSummary, error) {
	var camps []models.CampSummary
	resp, err := h.authorize(h.client.R().SetContext(ctx)).
		SetResult(&camps).
		Get("/api/user/camps")
	if err != nil {
		return nil, fmt.Errorf("list camps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return camps, nil
}

// signedRequest marshals body once so that the HashSHA256 header covers the
// exact bytes sent.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if sum := h.hasher.SumHex(payload); sum != "" {
		req.SetHeader(utils.HashHeader, sum)
	}
	return req, nil
}

func (h *httpServerAdapter) authorize(req *resty.Request) *resty.Request {
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Close implements [ServerAdapter]. It drops idle keep-alive connections.
func (h *httpServerAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
