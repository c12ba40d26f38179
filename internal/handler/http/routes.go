// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer, h.withHashCheck)

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/camp/sync", h.synchronize)
		r.Get("/api/camp/{campID}", h.getCamp)
		r.Get("/api/user/camps", h.listCamps)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
