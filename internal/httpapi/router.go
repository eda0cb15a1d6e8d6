// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package httpapi exposes the submission, lookup, print, and SSE-subscribe
// endpoints over go-chi/chi/v5, merging the separate sat/ip routers it
// replaces into one chi router tree.
package httpapi

import (
	"net/http"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/coordinator"
	"github.com/giraycoskun/automated-reasoning/internal/kv"
	"github.com/giraycoskun/automated-reasoning/internal/streamer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server bundles the dependencies the HTTP handlers need.
type Server struct {
	*clog.CLogger
	coord    *coordinator.Coordinator
	kv       *kv.Adapter
	streamer *streamer.Streamer
	bridge   *streamer.Bridge
}

// New builds a Server and its chi router.
func New(coord *coordinator.Coordinator, kvClient *kv.Adapter, s *streamer.Streamer, bridge *streamer.Bridge) *Server {
	return &Server{
		CLogger:  clog.New("httpapi", "main"),
		coord:    coord,
		kv:       kvClient,
		streamer: s,
		bridge:   bridge,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/ping", s.handlePing)
	r.Get("/", s.handleMetadata)

	r.Route("/problems", func(r chi.Router) {
		r.Post("/ip/sudoku", s.handleSubmitSudokuIP)
		r.Post("/sat/sudoku", s.handleSubmitSudokuSAT)
		r.Get("/{id}", s.handleGetProblem)
		r.Get("/print/{id}", s.handlePrintProblem)
		r.Get("/subscribe/{id}", s.handleSubscribe)
	})

	return r
}
