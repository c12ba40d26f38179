// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
)

// NewServerAdapter picks the transport named by adapterCfg.Protocol. An
// empty protocol means HTTP.
func NewServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	switch strings.ToLower(strings.TrimSpace(adapterCfg.Protocol)) {
	case "", config.ProtocolHTTP:
		return NewHTTPServerAdapter(adapterCfg, appCfg, logger)
	case config.ProtocolGRPC:
		return NewGRPCServerAdapter(adapterCfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, adapterCfg.Protocol)
	}
}
