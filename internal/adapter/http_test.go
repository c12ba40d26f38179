// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a.(*httpServerAdapter)
}

func testToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("camp-sync-test", userID, time.Hour, "sign-key")
	require.NoError(t, err)
	return token.SignedString
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://camps.example.com/ ", want: "https://camps.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	token := testToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, utils.NewHasher(testHashKey).SumHex(body), r.Header.Get(utils.HashHeader))

		var got models.User
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "alice", got.Login)
		assert.Equal(t, "secret", got.Password)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Login: "alice", Name: "Alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "alice", got.Login)
	assert.Empty(t, got.Password)
	assert.Equal(t, token, a.Token())
}

func TestLogin_Success(t *testing.T) {
	token := testToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, token, a.Token())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	assert.ErrorIs(t, err, utils.ErrInvalidAuthorizationHeader)
	assert.Empty(t, a.Token())
}

func TestAuthenticate_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

// ── Synchronize ─────────────────────────────────────────────────────────────

func TestSynchronize_SendsSignedAuthorizedRequest(t *testing.T) {
	req := models.SyncRequest{
		CampID:  "camp-1",
		OpIndex: 3,
		NewOps:  []models.Operation{{ID: "op-4", Type: models.OperationRenameList, ListID: "l1", Name: "Food"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/camp/sync", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, utils.NewHasher(testHashKey).SumHex(body), r.Header.Get(utils.HashHeader))

		var got models.SyncRequest
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, req.CampID, got.CampID)
		assert.Equal(t, req.OpIndex, got.OpIndex)
		assert.Equal(t, req.NewOps, got.NewOps)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SyncResponse{
			Status:     models.SyncNeedUpdate,
			UpdatedOps: []models.Operation{{ID: "op-x", Type: models.OperationRenameList, ListID: "l2", Name: "Gear"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" token-1 ")

	got, err := a.Synchronize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.SyncNeedUpdate, got.Status)
	require.Len(t, got.UpdatedOps, 1)
	assert.Equal(t, "op-x", got.UpdatedOps[0].ID)
}

func TestSynchronize_ServiceUnavailableIsRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"RETRY"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Synchronize(context.Background(), models.SyncRequest{CampID: "camp-1", OpIndex: 1})

	require.NoError(t, err)
	assert.Equal(t, models.SyncRetry, got.Status)
}

func TestSynchronize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "expired token", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Synchronize(context.Background(), models.SyncRequest{CampID: "camp-1", OpIndex: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSynchronize_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Synchronize(context.Background(), models.SyncRequest{CampID: "camp-1", OpIndex: 1})
	assert.Error(t, err)
}

// ── GetCamp / ListCamps ─────────────────────────────────────────────────────

func TestGetCamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != "/api/camp/camp-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Camp{ID: "camp-1", Name: "Lake", Revision: 5})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.GetCamp(context.Background(), "camp-1")
	require.NoError(t, err)
	assert.Equal(t, "Lake", got.Name)
	assert.Equal(t, int64(5), got.Revision)

	_, err = a.GetCamp(context.Background(), "camp-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCamps(t *testing.T) {
	want := []models.CampSummary{{ID: "camp-1", Name: "Lake", Revision: 5}, {ID: "camp-2", Name: "Hills", Revision: 1}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/camps", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.ListCamps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── NewServerAdapter ────────────────────────────────────────────────────────

func TestNewServerAdapter_Protocol(t *testing.T) {
	cfg := config.ClientAdapter{HTTPAddress: "localhost:8080", GRPCAddress: "localhost:9090"}

	cfg.Protocol = ""
	a, err := NewServerAdapter(cfg, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpServerAdapter{}, a)

	cfg.Protocol = "GRPC"
	a, err = NewServerAdapter(cfg, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &grpcServerAdapter{}, a)
	assert.NoError(t, a.Close())

	cfg.Protocol = "carrier-pigeon"
	_, err = NewServerAdapter(cfg, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownProtocol)
}
