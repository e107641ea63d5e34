// Daily challenge routes, mounted under /daily:
//   - POST /daily/new         start (or resume) today's game
//   - POST /daily/guess       submit a guess for today's game
//   - GET  /daily/leaderboard top results for a date (default today)
//
// Each user plays once per day, enforced by the DB unique constraint
// plus the in-memory session. Sessions hold active play and are
// persisted to the DB on win. Word selection is deterministic per date.
package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quintle/quintle/internal/daily"
	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession is transient in-memory state for an in-progress daily game.
type dailySession struct {
	GameID    string
	UserID    string
	Date      string
	WordIndex int
	Answer    string
	Start     time.Time
	Guesses   int
	Finished  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     s.cfg.DailySalt,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key, deterministic word index, and answer.
func (d *dailyServer) dateKeyNow() (date string, idx int, answer string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	answers := words.Answers()
	if len(answers) == 0 {
		return date, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, len(answers))
	return date, idx, answers[idx]
}

// userID returns the authenticated user ID if logged in, otherwise the
// anonymous cookie identity.
func (d *dailyServer) userID(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleNew creates or resumes a daily session for the current date.
// A DB row for today means the user already finished: Played=true.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userID(w, r)
	date, idx, answer := d.dateKeyNow()

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: "", Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.GameID, Date: date, Played: false})
		return
	}
	sess := &dailySession{
		GameID:    uuid.NewString(),
		UserID:    uid,
		Date:      date,
		WordIndex: idx,
		Answer:    strings.ToLower(answer),
		Start:     time.Now(),
	}
	d.sessions[key] = sess
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.GameID, Date: date, Played: false})
}

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type dailyGuessRes struct {
	Marks   []game.Mark `json:"marks"`
	State   string      `json:"state"` // in_progress | won | locked
	Guesses int         `json:"guesses"`
}

// handleGuess validates and applies a guess to today's daily session.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p.Word = strings.ToLower(strings.TrimSpace(p.Word))
	if p.GameID == "" || len(p.Word) != game.WordLength {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date, _, _ := d.dateKeyNow()

	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.GameID != p.GameID {
		http.Error(w, `{"error":"no session"}`, http.StatusConflict)
		return
	}
	if sess.Finished {
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: []game.Mark{}, State: "locked", Guesses: sess.Guesses})
		return
	}

	if !words.IsAllowed(p.Word) {
		http.Error(w, `{"error":"word not allowed"}`, http.StatusBadRequest)
		return
	}

	marks, err := game.Score(p.Word, sess.Answer)
	if err != nil {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	d.mu.Lock()
	sess.Guesses++
	won := game.AllCorrect(marks)
	if won {
		sess.Finished = true
	}
	guesses := sess.Guesses
	d.mu.Unlock()

	if won {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, WordIndex: sess.WordIndex, Guesses: guesses, ElapsedMs: elapsed,
		})
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: marks, State: "won", Guesses: guesses})
		return
	}
	_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: marks, State: "in_progress", Guesses: guesses})
}

type leaderboardRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(leaderboardRes{Date: date, Top: rows})
}
