package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettergames/jumble-server/internal/game"
)

func roundTrip(t *testing.T, c *Codec, roundID string, s *game.Session) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, c.Write(rec, roundID, s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	return req
}

func TestWriteReadRoundTrip(t *testing.T) {
	c := NewCodec("test-secret", false)
	in := &game.Session{Jumble: "tacrx", TargetCount: 3, Matches: []string{"cat", "car"}}

	req := roundTrip(t, c, "round-1", in)
	roundID, out, err := c.Read(req)
	require.NoError(t, err)
	assert.Equal(t, "round-1", roundID)
	assert.Equal(t, in.Jumble, out.Jumble)
	assert.Equal(t, in.TargetCount, out.TargetCount)
	assert.Equal(t, in.Matches, out.Matches)
}

func TestReadEmptyMatchesStayNonNil(t *testing.T) {
	c := NewCodec("test-secret", false)
	req := roundTrip(t, c, "r", &game.Session{Jumble: "tac", TargetCount: 2, Matches: []string{}})

	_, out, err := c.Read(req)
	require.NoError(t, err)
	assert.NotNil(t, out.Matches)
	assert.Empty(t, out.Matches)
}

func TestReadMissingCookie(t *testing.T) {
	c := NewCodec("test-secret", false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err := c.Read(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestReadTamperedCookie(t *testing.T) {
	c := NewCodec("test-secret", false)
	req := roundTrip(t, c, "r", &game.Session{Jumble: "tac", TargetCount: 2, Matches: []string{}})

	ck, err := req.Cookie(CookieName)
	require.NoError(t, err)
	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value + "x"})

	_, _, err = c.Read(forged)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestReadWrongSecret(t *testing.T) {
	writer := NewCodec("secret-a", false)
	reader := NewCodec("secret-b", false)
	req := roundTrip(t, writer, "r", &game.Session{Jumble: "tac", TargetCount: 2, Matches: []string{}})

	_, _, err := reader.Read(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClear(t *testing.T) {
	c := NewCodec("test-secret", false)
	rec := httptest.NewRecorder()
	c.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
