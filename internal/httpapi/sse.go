// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultSubscribeTTL = 120 * time.Second

// handleSubscribe streams a problem's result events as text/event-stream.
// It bridges off the Redis pub/sub channel in addition to the local
// Streamer so a subscriber connected to an API instance other than the one
// whose RunResultListener delivered the result still receives it.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ttl := defaultSubscribeTTL
	if raw := r.URL.Query().Get("ttl"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	s.bridge.Watch(ctx, id)

	sub := s.streamer.Subscribe(id, ttl)
	defer sub.Close()

	for {
		select {
		case <-r.Context().Done():
			return
		case frame, ok := <-sub.Frames():
			if !ok {
				return
			}
			if err := writeSSEFrame(w, frame.Type, frame.Data); err != nil {
				return
			}
			flusher.Flush()
			if frame.Type == "timeout" {
				return
			}
		}
	}
}

func writeSSEFrame(w http.ResponseWriter, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
	return err
}
