// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, metrics).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Solver endpoint: POST /solve.
//   - Game endpoints (optional auth): /game/new, /game/word, /game/finish.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine (see auth.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes can still run for guests, who are tracked by an anonymous cookie.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/history"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

var (
	// httpRequests counts handled requests by route pattern and status.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boggle_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	// httpDuration tracks handler latency by route pattern.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boggle_http_request_duration_seconds",
		Help:    "HTTP handler duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

const (
	// maxBoardSide caps rows and columns of any board the server will solve.
	maxBoardSide = 10
	// maxBodyBytes caps request bodies.
	maxBodyBytes = 64 << 10
)

// Server bundles router, solver, in-memory game store, and DB handle.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	solver  *solver.Solver
	store   store.Store
	db      *sql.DB
	history *history.Store
	daily   *dailyServer

	gameMu sync.Mutex // serializes mutations of in-memory games
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, sv *solver.Solver, st store.Store, db *sql.DB) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		solver:  sv,
		store:   st,
		db:      db,
		history: history.NewStore(db),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(instrument)                      // prometheus counters
	s.r.Use(limitBody)                       // bound request bodies
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"boggle-go","endpoints":["/health","POST /solve","POST /game/new","POST /game/word","POST /game/finish","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.r.Get("/debug/words", s.handleDebugWords)

	// Solver: stateless, no auth
	s.r.Post("/solve", s.handleSolve)

	// Game endpoints: OPTIONAL AUTH (guests can play)
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/word", s.handleWord)
	s.r.With(s.withOptionalAuth()).Post("/game/finish", s.handleFinish)

	// Daily Challenge: OPTIONAL AUTH (results persisted on finish)
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Auth + profile/stats (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// limitBody caps how much of a request body handlers may read.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// instrument records request count and latency keyed by chi route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ------------------------------ SOLVE --------------------------------------

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	Board     board.Board `json:"board"`
	Order     string      `json:"order"`     // "lex" (default) | "score"
	MinLength int         `json:"minLength"` // optional floor on word length
}
type wordScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
type solveRes struct {
	Words []wordScore `json:"words"`
	Count int         `json:"count"`
	Total int         `json:"total"`
}

// handleSolve runs the solver on a caller-supplied board.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	order, err := solver.ParseOrder(req.Order)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_order", err.Error())
		return
	}
	if !boardSizeOK(w, req.Board) {
		return
	}

	words, err := s.solver.Solve(req.Board, solver.WithOrder(order), solver.WithMinLength(req.MinLength))
	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	out := solveRes{Words: make([]wordScore, 0, len(words)), Count: len(words)}
	for _, word := range words {
		pts := solver.Score(word)
		out.Words = append(out.Words, wordScore{Word: word, Score: pts})
		out.Total += pts
	}
	writeJSON(w, http.StatusOK, out)
}

// writeSolveError maps solver failures to HTTP statuses.
func (s *Server) writeSolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrInvalidBoard):
		writeError(w, http.StatusBadRequest, "bad_board", err.Error())
	case errors.Is(err, lexicon.ErrDictionaryUnavailable):
		log.Error().Err(err).Msg("solve without dictionary")
		writeError(w, http.StatusServiceUnavailable, "no_dictionary", "")
	default:
		log.Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed", "")
	}
}

// handleDebugWords reports the loaded lexicon size.
func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	lex, err := s.solver.Lexicon()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_dictionary", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"words": lex.Len()})
}

// ------------------------------- util --------------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends {"error":code} plus an optional human-readable detail.
func writeError(w http.ResponseWriter, status int, code, detail string) {
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}
