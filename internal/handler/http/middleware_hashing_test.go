// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/stretchr/testify/assert"
)

const testHashKey = "hash-key"

func TestWithHashCheck(t *testing.T) {
	body := `{"camp_id":"camp-1","op_index":4,"new_ops":[]}`

	tests := []struct {
		name       string
		hashKey    string
		signature  string
		body       string
		wantStatus int
	}{
		{name: "valid signature", hashKey: testHashKey, signature: utils.NewHasher(testHashKey).SumHex([]byte(body)), body: body, wantStatus: http.StatusOK},
		{name: "no header", hashKey: testHashKey, body: body, wantStatus: http.StatusOK},
		{name: "check disabled", hashKey: "", signature: "garbage", body: body, wantStatus: http.StatusOK},
		{name: "tampered body", hashKey: testHashKey, signature: utils.NewHasher(testHashKey).SumHex([]byte(body)), body: strings.Replace(body, "4", "5", 1), wantStatus: http.StatusBadRequest},
		{name: "other key", hashKey: testHashKey, signature: utils.NewHasher("other").SumHex([]byte(body)), body: body, wantStatus: http.StatusBadRequest},
		{name: "not hex", hashKey: testHashKey, signature: "zz", body: body, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, tt.hashKey)

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				seen = string(data)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/camp/sync", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(utils.HashHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			h.withHashCheck(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.body, seen, "body must be restored for the next handler")
			} else {
				assert.Equal(t, app.MsgInvalidRequestHash, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestWithHashCheck_ViaRouter(t *testing.T) {
	router := newTestHandler(t, nil, testHashKey).Init()
	body := `{"login":"alice","password":"secret"}`

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	req.Header.Set(utils.HashHeader, utils.NewHasher(testHashKey).SumHex([]byte(body)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	req.Header.Set(utils.HashHeader, utils.NewHasher(testHashKey).SumHex([]byte(body+" ")))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
