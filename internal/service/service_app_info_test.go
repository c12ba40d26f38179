// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_BuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_NoVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "2026-10-01", "abc123"), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppBuildInfo
// ─────────────────────────────────────────────

func TestGetAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		build       models.AppBuildInfo
		wantVersion string
	}{
		{
			name:        "linker version",
			build:       models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
			wantVersion: "1.2.3",
		},
		{
			name:        "configured version wins",
			cfg:         config.App{Version: "v1.2.3-beta+build.42"},
			build:       models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
			wantVersion: "v1.2.3-beta+build.42",
		},
		{
			name:        "configured version without linker data",
			cfg:         config.App{Version: "0.0.1"},
			build:       models.NewAppBuildInfo("", "", ""),
			wantVersion: "0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			require.NoError(t, err)

			got := svc.GetAppBuildInfo(context.Background())

			assert.Equal(t, tt.wantVersion, got.BuildVersion())
			assert.Equal(t, tt.build.BuildDate(), got.BuildDate())
			assert.Equal(t, tt.build.BuildCommit(), got.BuildCommit())
		})
	}
}

func TestGetAppBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppBuildInfo(ctx).BuildVersion())
}
