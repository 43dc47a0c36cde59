package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kinus-bit/bookStore/internal/utils"
)

const testSecret = "middleware-test-secret"

// invoke runs the handler chain for a request carrying the given
// Authorization header and reports the recorded status plus whether the
// downstream handler ran.
func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, int) {
	t.Helper()
	e := echo.New()
	calls := 0
	h := mw(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, calls
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec, calls := invoke(t, JWTAuth(testSecret), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, calls, "downstream handler must not run without a token")
}

func TestJWTAuth_WrongScheme(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 1, "standard", "u", 60)
	require.NoError(t, err)

	for _, header := range []string{
		"Basic abc123",
		"bearer " + tok.Token, // scheme is case-sensitive
		"Bearer",              // no space, no token
		tok.Token,             // bare token without scheme
	} {
		rec, calls := invoke(t, JWTAuth(testSecret), header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Zero(t, calls, "header %q", header)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	rec, calls := invoke(t, JWTAuth(testSecret), "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, calls)

	// Signed with a different secret.
	tok, err := utils.NewAccessToken("other-secret", 1, "standard", "u", 60)
	require.NoError(t, err)
	rec, calls = invoke(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, calls)
}

func TestJWTAuth_AttachesClaims(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 42, "admin", "alice", 60)
	require.NoError(t, err)

	e := echo.New()
	var gotID uint64
	var gotRole, gotUsername string
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		gotID, _ = c.Get("user_id").(uint64)
		gotRole, _ = c.Get("role").(string)
		gotUsername, _ = c.Get("username").(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint64(42), gotID)
	require.Equal(t, "admin", gotRole)
	require.Equal(t, "alice", gotUsername)
}
