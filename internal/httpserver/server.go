// internal/httpserver/server.go
//
// HTTP front end for the candidate filter.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /candidates: filter the loaded dictionary against a scenario.
//   - POST /score: evaluate a guess against an answer.
//
// Notes:
//   - The word list is loaded once at startup and only read afterwards.
//   - Each request builds its own immutable constraint set, so handlers
//     share no mutable state.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/helper/internal/feedback"
	"github.com/robalobadob/wordle/apps/helper/internal/scenario"
)

// maxBodyBytes bounds request bodies; scenarios are tiny.
const maxBodyBytes = 64 << 10

// Server bundles the router and the dictionary it filters.
type Server struct {
	r      *chi.Mux
	words  []string
	length int
}

// New constructs a Server over words, installs middleware, and registers
// routes. length is the configured word length; zero means it is inferred
// from each scenario.
func New(words []string, length int) *Server {
	s := &Server{r: chi.NewRouter(), words: words, length: length}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /candidates","POST /score"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.words)})
	})

	s.r.Post("/candidates", s.handleCandidates)
	s.r.Post("/score", s.handleScore)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found: "+r.URL.Path)
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

// ---------------------------- CANDIDATES -----------------------------------

// candidatesRes is the payload for POST /candidates.
type candidatesRes struct {
	Count        int      `json:"count"`
	KnownLetters string   `json:"knownLetters"`
	Misses       string   `json:"misses"`
	Words        []string `json:"words"`
}

// handleCandidates filters the dictionary against the posted scenario
// document ({"scenario": {...}}). Words come back in dictionary order.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var doc scenario.Document
	if err := decode(w, r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sc := &doc.Scenario
	sc.Normalize()

	c, err := sc.Constraints(sc.Length(s.length))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	viable := constraint.Filter(s.words, c)
	log.Debug().
		Str("requestId", chimw.GetReqID(r.Context())).
		Int("candidates", len(viable)).
		Msg("filtered candidates")

	_ = json.NewEncoder(w).Encode(candidatesRes{
		Count:        len(viable),
		KnownLetters: c.KnownLetters().String(),
		Misses:       c.Misses().String(),
		Words:        viable,
	})
}

// ------------------------------- SCORE -------------------------------------

// scoreReq/Res payloads for POST /score.
type scoreReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}
type scoreRes struct {
	Marks   []feedback.Mark `json:"marks"`
	Pattern string          `json:"pattern"`
}

// handleScore evaluates a guess against an answer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	marks, err := feedback.Score(req.Guess, req.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(scoreRes{Marks: marks, Pattern: feedback.Pattern(marks)})
}

// ------------------------------ helpers ------------------------------------

// decode reads a size-limited JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// writeError sends {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
