// internal/session/session.go
//
// Signed-cookie transport for game sessions.
//
// The session (jumble, target count, matches) rides in an HS256 JWT set as
// an HttpOnly cookie, so the server keeps no per-player state between
// requests. A round id travels in the JWT ID claim to correlate the cookie
// with the round-history store. Tampered, expired, or absent cookies read
// back as ErrNoSession; the serving layer answers that by starting a new
// round.

package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lettergames/jumble-server/internal/game"
)

// CookieName is the session cookie written to the browser.
const CookieName = "vocab_session"

// ErrNoSession is returned by Read when no usable session cookie is
// present (missing, malformed, bad signature, or expired).
var ErrNoSession = errors.New("session: no valid session cookie")

// Codec signs and verifies session cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
	secure bool // marks cookies Secure; pair with SameSite=None
}

// NewCodec builds a codec. secure should be true behind HTTPS.
func NewCodec(secret string, secure bool) *Codec {
	return &Codec{secret: []byte(secret), ttl: 24 * time.Hour, secure: secure}
}

type sessionClaims struct {
	Jumble      string   `json:"jumble"`
	TargetCount int      `json:"target_count"`
	Matches     []string `json:"matches"`
	jwt.RegisteredClaims
}

// Write signs the session and round id into the cookie.
func (c *Codec) Write(w http.ResponseWriter, roundID string, s *game.Session) error {
	now := time.Now()
	claims := sessionClaims{
		Jumble:      s.Jumble,
		TargetCount: s.TargetCount,
		Matches:     s.Matches,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        roundID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite(),
		Expires:  now.Add(c.ttl),
	})
	return nil
}

// Read verifies the cookie and returns the round id and session state.
func (c *Codec) Read(r *http.Request) (string, *game.Session, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", nil, ErrNoSession
	}
	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(ck.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", nil, ErrNoSession
	}
	matches := claims.Matches
	if matches == nil {
		matches = []string{}
	}
	return claims.ID, &game.Session{
		Jumble:      claims.Jumble,
		TargetCount: claims.TargetCount,
		Matches:     matches,
	}, nil
}

// Clear deletes the session cookie.
func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite(),
		MaxAge:   -1,
	})
}

// sameSite pairs None with Secure so third-party contexts work in
// production while local HTTP development keeps Lax.
func (c *Codec) sameSite() http.SameSite {
	if c.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
