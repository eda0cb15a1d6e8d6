// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/giraycoskun/automated-reasoning/internal/coordinator"
	"github.com/giraycoskun/automated-reasoning/internal/domain/sudoku"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/go-chi/chi/v5"
)

type sudokuRequest struct {
	Grid []string `json:"grid"`
}

type taskIDResponse struct {
	TaskID string `json:"task_id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "automated-reasoning",
		"status":  "ok",
	})
}

func (s *Server) handleSubmitSudokuIP(w http.ResponseWriter, r *http.Request) {
	s.submitSudoku(w, r, problem.TypeIP)
}

func (s *Server) handleSubmitSudokuSAT(w http.ResponseWriter, r *http.Request) {
	s.submitSudoku(w, r, problem.TypeSAT)
}

func (s *Server) submitSudoku(w http.ResponseWriter, r *http.Request, t problem.ProblemType) {
	var req sudokuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	grid, err := sudoku.ParseRows(req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.coord.Submit(r.Context(), coordinator.ProblemInput{
		ProblemType: t,
		ProblemName: problem.NameSudoku,
		ProblemData: map[string]any{"grid": grid.ToAnySlice()},
	})
	if err != nil {
		s.handleSubmissionError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskIDResponse{TaskID: id})
}

func (s *Server) handleSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, problem.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, problem.ErrQueue):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, problem.ErrStorage):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		s.Errorf("submission failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) loadProblem(r *http.Request) (problem.Problem, bool, error) {
	id := chi.URLParam(r, "id")
	fields, err := s.kv.GetFields(r.Context(), problem.Key(id))
	if err != nil {
		return problem.Problem{}, false, err
	}
	if len(fields) == 0 {
		return problem.Problem{}, false, nil
	}
	p, err := problem.FromFields(fields)
	if err != nil {
		return problem.Problem{}, false, err
	}
	return p, true, nil
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	p, found, err := s.loadProblem(r)
	if err != nil {
		s.Errorf("loading problem failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "problem not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePrintProblem(w http.ResponseWriter, r *http.Request) {
	p, found, err := s.loadProblem(r)
	if err != nil {
		s.Errorf("loading problem failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "problem not found")
		return
	}

	grid, err := sudoku.ParseAnySlice(p.ProblemData["grid"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "problem has no printable grid")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(grid.String()))
}
