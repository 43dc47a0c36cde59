package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kinus-bit/bookStore/internal/utils"
)

// runGated sends a request with the given token through the full
// JWTAuth -> RequireRole("admin") chain, the way the router composes it.
func runGated(t *testing.T, token string) (*httptest.ResponseRecorder, int) {
	t.Helper()
	e := echo.New()
	calls := 0
	h := JWTAuth(testSecret)(RequireRole("admin")(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/v1/books/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, calls
}

func TestRequireRole_StandardForbidden(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 5, "standard", "bob", 60)
	require.NoError(t, err)

	rec, calls := runGated(t, tok.Token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Zero(t, calls, "handler must not run for a forbidden role")
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 6, "admin", "root", 60)
	require.NoError(t, err)

	rec, calls := runGated(t, tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, calls)
}

func TestRequireRole_MissingRoleValue(t *testing.T) {
	t.Parallel()

	// A role gate without a preceding identity check sees no role at all
	// and rejects everything.
	e := echo.New()
	calls := 0
	h := RequireRole("admin")(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Zero(t, calls)
}
