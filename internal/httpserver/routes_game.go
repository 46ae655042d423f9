// internal/httpserver/routes_game.go
//
// Game routes.
//   - GET  /, /index    → start a fresh round: new jumble, matches reset,
//                         session written to the signed cookie.
//   - GET  /keep_going  → re-render the game page for the current round.
//   - GET  /success     → completion page.
//   - POST /_check/word → classify one attempt, update cookie + history.
//
// The response JSON of /_check/word keeps the original front-end contract:
// result.valid_word, result.already_found, result.message, result.matches
// and result.redirect_url (pointing at /success once the round is done).

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lettergames/jumble-server/internal/game"
	"github.com/lettergames/jumble-server/internal/store"
)

// gamePage is the template payload for vocab.html.
type gamePage struct {
	Jumble      string
	TargetCount int
	Matches     []string
	Vocab       []string
}

// handleIndex starts (or restarts) a round and renders the game page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, err := game.Start(s.opts.Vocab, s.opts.SuccessAt, s.opts.Seed)
	if err != nil {
		log.Error().Err(err).Msg("start session")
		http.Error(w, "cannot start a round", http.StatusInternalServerError)
		return
	}

	roundID := genID()
	anon := s.ensureAnonID(w, r)
	if err := s.opts.Store.StartRound(r.Context(), store.Round{
		ID:          roundID,
		PlayerID:    anon,
		Jumble:      sess.Jumble,
		TargetCount: sess.TargetCount,
		StartedAt:   time.Now().UTC(),
	}); err != nil {
		log.Warn().Err(err).Str("roundId", roundID).Msg("record round start")
	}

	if err := s.opts.Sessions.Write(w, roundID, sess); err != nil {
		log.Error().Err(err).Msg("write session cookie")
		http.Error(w, "cannot start a round", http.StatusInternalServerError)
		return
	}
	s.renderGame(w, sess)
}

// handleKeepGoing re-renders the game page with the stored session.
// Without a usable session there is nothing to keep going with, so the
// player is sent back to a fresh round.
func (s *Server) handleKeepGoing(w http.ResponseWriter, r *http.Request) {
	_, sess, err := s.opts.Sessions.Read(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderGame(w, sess)
}

// handleSuccess renders the completion page.
func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	var matches []string
	if _, sess, err := s.opts.Sessions.Read(r); err == nil {
		matches = sess.Matches
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "success.html", map[string]any{"Matches": matches}); err != nil {
		log.Error().Err(err).Msg("render success page")
	}
}

func (s *Server) renderGame(w http.ResponseWriter, sess *game.Session) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := gamePage{
		Jumble:      sess.Jumble,
		TargetCount: sess.TargetCount,
		Matches:     sess.Matches,
		Vocab:       s.opts.Vocab.AsList(),
	}
	if err := s.tmpl.ExecuteTemplate(w, "vocab.html", page); err != nil {
		log.Error().Err(err).Msg("render game page")
	}
}

// -----------------------------------------------------------------------------
// POST /_check/word

// checkResult mirrors the JSON contract of the original front end.
// redirect_url only appears when the round is over (or the session
// expired): front ends redirect whenever the key exists, so emitting it on
// every guess would reload the page mid-round.
type checkResult struct {
	Outcome      game.Outcome `json:"outcome"`
	ValidWord    bool         `json:"valid_word"`
	AlreadyFound bool         `json:"already_found"`
	Message      string       `json:"message,omitempty"`
	Matches      []string     `json:"matches"`
	RedirectURL  string       `json:"redirect_url,omitempty"`
}

// handleCheckWord classifies the submitted attempt against the session's
// jumble and the vocabulary. Bad user input is an outcome, never an error;
// only a missing/expired session short-circuits, redirecting to "/".
func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, `{"error":"bad_form"}`)
		return
	}
	attempt := r.FormValue("attempt")

	roundID, sess, err := s.opts.Sessions.Read(r)
	if err != nil {
		s.respondExpired(w)
		return
	}
	res, err := sess.Check(s.opts.Vocab, attempt)
	if err != nil {
		// Session cookie without a jumble: treat as expired.
		s.respondExpired(w)
		return
	}

	out := checkResult{
		Outcome:      res.Outcome,
		ValidWord:    res.Outcome == game.OutcomeAccepted || res.Outcome == game.OutcomeDuplicate,
		AlreadyFound: res.Outcome == game.OutcomeDuplicate,
		Matches:      res.Matches,
	}
	switch res.Outcome {
	case game.OutcomeDuplicate:
		out.Message = fmt.Sprintf("You already found %s", res.Word)
	case game.OutcomeNotAWord:
		out.Message = fmt.Sprintf("%s isn't in the list of words", res.Word)
	case game.OutcomeNotFromJumble:
		out.Message = fmt.Sprintf("%q can't be made from the letters %s", res.Word, sess.Jumble)
	case game.OutcomeAccepted:
		// Accepted words update the cookie and the round history.
		if err := s.opts.Sessions.Write(w, roundID, sess); err != nil {
			log.Error().Err(err).Msg("write session cookie")
		}
		if err := s.opts.Store.UpdateProgress(r.Context(), roundID, len(res.Matches), res.Complete); err != nil {
			log.Warn().Err(err).Str("roundId", roundID).Msg("record progress")
		}
	}
	if res.Complete {
		out.RedirectURL = "/success"
	}

	_ = json.NewEncoder(w).Encode(map[string]checkResult{"result": out})
}

// respondExpired tells the front end to restart at "/".
func (s *Server) respondExpired(w http.ResponseWriter) {
	_ = json.NewEncoder(w).Encode(map[string]checkResult{"result": {
		Message:     "Your session expired, starting a new round",
		Matches:     []string{},
		RedirectURL: "/",
	}})
}

// ----------------------------- anonymous id --------------------------------

const anonCookieName = "vocab_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to associate rounds with a stable guest identifier.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: func() http.SameSite {
			if s.opts.Secure {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}
