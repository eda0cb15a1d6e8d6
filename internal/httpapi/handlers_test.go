package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
)

func testServer() *Server {
	return &Server{CLogger: clog.New("httpapi", "test")}
}

func TestHandlePing(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	s.handlePing(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "pong" {
		t.Errorf("body = %q, want %q", body, "pong")
	}
}

func TestHandleMetadata(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.handleMetadata(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestSubmitSudokuRejectsMalformedGrid(t *testing.T) {
	s := testServer()
	body := strings.NewReader(`{"grid": ["too short"]}`)
	req := httptest.NewRequest(http.MethodPost, "/problems/ip/sudoku", body)
	w := httptest.NewRecorder()

	s.submitSudoku(w, req, "IP")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitSudokuRejectsMalformedJSON(t *testing.T) {
	s := testServer()
	body := strings.NewReader(`not json`)
	req := httptest.NewRequest(http.MethodPost, "/problems/ip/sudoku", body)
	w := httptest.NewRecorder()

	s.submitSudoku(w, req, "IP")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
