// Package server implements the gensudoku HTTP API.
//
// The API generates puzzles, solves submitted grids, and archives every
// generated puzzle in a Store for later retrieval. Responses for seeded
// generate requests are cached, since the same seed and hint count always
// produce the same puzzle.
package server

import (
	"encoding/json"
	stderrors "errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gensudoku/pkg/cache"
	"github.com/matzehuels/gensudoku/pkg/errors"
	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

// cacheTTL bounds how long seeded generate responses stay cached.
const cacheTTL = 24 * time.Hour

// Server holds the handler dependencies.
type Server struct {
	logger    *log.Logger
	store     Store
	cache     cache.Cache
	stepLimit int
}

// New creates a server. A nil cache disables response caching.
func New(logger *log.Logger, store Store, c cache.Cache, stepLimit int) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{logger: logger, store: store, cache: c, stepLimit: stepLimit}
}

// Router returns the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/api/generate", s.handleGenerate)
	r.Post("/api/solve", s.handleSolve)
	r.Get("/api/puzzles", s.handleList)
	r.Get("/api/puzzles/{id}", s.handleLoad)
	return r
}

type generateRequest struct {
	Seed       *int64 `json:"seed"`
	ExtraHints int    `json:"extraHints"`
}

type generateResponse struct {
	ID         string `json:"id"`
	Seed       int64  `json:"seed"`
	ExtraHints int    `json:"extraHints"`
	Hints      int    `json:"hints"`
	Puzzle     string `json:"puzzle"`
	Solution   string `json:"solution"`
	DurationMs int64  `json:"durationMs"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "invalid request body")
			return
		}
	}
	if req.ExtraHints < 0 {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "extraHints must be non-negative")
		return
	}

	// Requests without a seed are unique by construction; only seeded
	// requests are worth caching.
	var key string
	if req.Seed != nil {
		key = cache.Key("generate", *req.Seed, req.ExtraHints)
		if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
			var resp generateResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				s.logger.Debug("generate cache hit", "seed", resp.Seed)
				s.writeJSON(w, http.StatusOK, resp)
				return
			}
		}
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	puzzle, solution, err := sudoku.Generate(rng, sudoku.Options{
		ExtraHints: req.ExtraHints,
		StepLimit:  s.stepLimit,
	})
	if err != nil {
		code := errors.ErrCodeGenerationFailed
		if stderrors.Is(err, sudoku.ErrBudgetExhausted) {
			code = errors.ErrCodeBudgetExhausted
		}
		s.logger.Error("generation failed", "seed", seed, "error", err)
		s.writeError(w, http.StatusInternalServerError, code, "puzzle generation failed")
		return
	}

	resp := generateResponse{
		ID:         uuid.NewString(),
		Seed:       seed,
		ExtraHints: req.ExtraHints,
		Hints:      puzzle.CountFilled(),
		Puzzle:     puzzle.Compact(),
		Solution:   solution.Compact(),
		DurationMs: time.Since(start).Milliseconds(),
	}

	p := &Puzzle{
		ID:         resp.ID,
		Seed:       seed,
		ExtraHints: req.ExtraHints,
		Grid:       puzzle,
		Solution:   solution,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), p); err != nil {
		s.logger.Error("saving puzzle failed", "id", p.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "failed to store puzzle")
		return
	}

	if key != "" {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(r.Context(), key, data, cacheTTL); err != nil {
				s.logger.Warn("caching response failed", "error", err)
			}
		}
	}

	s.logger.Info("generated puzzle",
		"id", resp.ID, "seed", seed, "hints", resp.Hints, "duration", time.Since(start))
	s.writeJSON(w, http.StatusOK, resp)
}

type solveRequest struct {
	Grid string `json:"grid"`
	Seed *int64 `json:"seed"`
}

type solveResponse struct {
	Solution   string `json:"solution"`
	DurationMs int64  `json:"durationMs"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "invalid request body")
		return
	}

	grid, err := sudoku.Parse(req.Grid)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidGrid, err.Error())
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	if !sudoku.Solve(&grid, rng) || !grid.ValidSolution() {
		s.writeError(w, http.StatusUnprocessableEntity, errors.ErrCodeNoSolution, "puzzle has no solution")
		return
	}

	s.logger.Info("solved puzzle", "duration", time.Since(start))
	s.writeJSON(w, http.StatusOK, solveResponse{
		Solution:   grid.Compact(),
		DurationMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("listing puzzles failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "failed to list puzzles")
		return
	}
	if metas == nil {
		metas = []PuzzleMeta{}
	}
	s.writeJSON(w, http.StatusOK, metas)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Load(r.Context(), id)
	if stderrors.Is(err, ErrNotFound) {
		s.writeError(w, http.StatusNotFound, errors.ErrCodeNotFound, "puzzle not found")
		return
	}
	if err != nil {
		s.logger.Error("loading puzzle failed", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "failed to load puzzle")
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		ID:         p.ID,
		Seed:       p.Seed,
		ExtraHints: p.ExtraHints,
		Hints:      p.Grid.CountFilled(),
		Puzzle:     p.Grid.Compact(),
		Solution:   p.Solution.Compact(),
	})
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, code errors.Code, msg string) {
	s.writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response failed", "error", err)
	}
}
