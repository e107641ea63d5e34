// HTTP wiring for the Quintle backend.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON,
//     CORS, per-IP rate limiting).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess,
//     GET /game/hint.
//   - Daily challenge endpoints mounted under /daily.
//   - Auth and profile endpoints: /auth/*, /stats/me, /games/mine.
//
// Optional auth decorates requests with user context when a valid token
// is present; those routes still run for guests via the anonymous cookie.
package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/config"
	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/store"
	"github.com/quintle/quintle/internal/words"
)

// Server bundles router, config, active game store, and the DB handle.
type Server struct {
	r     *chi.Mux
	cfg   *config.Config
	store store.Store
	db    *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, conn *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, store: st, db: conn}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(corsForOrigin(cfg.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"quintle","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/hint","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	rl := s.rateLimit()
	limited := s.r.With(s.withOptionalAuth(), rl)
	limited.Post("/game/new", s.handleNewGame)
	limited.Post("/game/guess", s.handleGuess)
	s.r.With(s.withOptionalAuth()).Get("/game/hint", s.handleHint)

	s.mountDaily(s.r.With(s.withOptionalAuth(), rl))
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests and for callers
// that manage the http.Server lifecycle themselves).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsForOrigin enables credentialed CORS for a single origin, so the
// auth cookie survives cross-origin requests from the web client.
func corsForOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
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
}

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a new in-memory game and persists a DB owner row
// (user_id or anonymous_id) for history and stats. The answer itself is
// never written to the DB.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	g := game.New(req.Answer)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	now := nowRFC3339()
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO games (id, user_id, started_at, status, guesses)
		                     VALUES (?,?,?,?,0)`, g.ID, me.ID, now, game.StatePlaying)
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert user game row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO games (id, anonymous_id, started_at, status, guesses)
		                     VALUES (?,?,?,?,0)`, g.ID, anon, now, game.StatePlaying)
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert anon game row")
		}
	}

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks []game.Mark `json:"marks"`
	State string      `json:"state"` // "playing" | "won" | "lost"
}

// handleGuess applies a guess to an in-memory game, persists progress,
// and on game end updates user stats in a best-effort transaction.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	marks, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Counters and history are best effort; gameplay must not fail on a
	// stats write.
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}

	tx, txErr := s.db.Begin()
	if txErr != nil {
		log.Warn().Err(txErr).Msg("begin stats tx")
		_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: state})
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE games SET guesses = guesses + 1 WHERE id=? AND `+ownerClause, g.ID, ownerArg); err != nil {
		log.Warn().Err(err).Msg("update guesses")
	}

	if state == game.StateWon || state == game.StateLost {
		if _, err := tx.Exec(`UPDATE games SET status=?, finished_at=? WHERE id=? AND `+ownerClause,
			state, nowRFC3339(), g.ID, ownerArg); err != nil {
			log.Warn().Err(err).Msg("finish game")
		}
		if me != nil {
			if err := s.bumpStats(tx, me.ID, state == game.StateWon); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	_ = tx.Commit()

	_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: state})
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type hintRes struct {
	Hint string `json:"hint"`
}

// handleHint returns the hint for a game's answer. Hints describe the
// word without revealing it, so exposing one mid-game is intentional.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("gameId")
	if id == "" {
		http.Error(w, `{"error":"missing gameId"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(hintRes{Hint: words.Hint(g.Answer)})
}
