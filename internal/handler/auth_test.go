package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kinus-bit/bookStore/internal/config"
	"github.com/kinus-bit/bookStore/internal/repository"
	"github.com/kinus-bit/bookStore/internal/utils"
)

const testSecret = "handler-test-secret"

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:    testSecret,
		AccessTTLMin: 60,
		BcryptCost:   bcrypt.MinCost,
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(db)), mock
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "status", "join_date", "last_login"})
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username=?)")).
		WithArgs("alice").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email=?)")).
		WithArgs("alice@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(11, 1))

	rec := postJSON(t, h.Register, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The issued token recovers exactly what was persisted.
	claims, err := utils.VerifyAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(11), claims.UserID)
	require.Equal(t, "standard", claims.Role)
	require.Equal(t, "alice", claims.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	for _, body := range []string{
		`{"email":"a@b.c","password":"pw"}`,
		`{"username":"a","password":"pw"}`,
		`{"username":"a","email":"a@b.c"}`,
	} {
		rec := postJSON(t, h.Register, "/auth/register", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRegister_DuplicateUsernameConflict(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username=?)")).
		WithArgs("alice").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	// Same username, different email: still a username conflict.
	rec := postJSON(t, h.Register, "/auth/register",
		`{"username":"alice","email":"new@example.com","password":"pw"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "username already exists")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmail(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email=.+").
		WithArgs("ghost@example.com").WillReturnRows(userRows())

	rec := postJSON(t, h.Login, "/auth/login",
		`{"email":"ghost@example.com","password":"pw"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "user not found")
}

func TestLogin_WrongPassword(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, err := utils.HashPassword("right", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT .+ FROM users WHERE email=.+").
		WithArgs("alice@example.com").
		WillReturnRows(userRows().AddRow(1, "alice", "alice@example.com", hash, "standard", "active", time.Now(), nil))

	rec := postJSON(t, h.Login, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "incorrect password")
}

func TestLogin_Success(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, err := utils.HashPassword("right", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT .+ FROM users WHERE email=.+").
		WithArgs("alice@example.com").
		WillReturnRows(userRows().AddRow(3, "alice", "alice@example.com", hash, "admin", "active", time.Now(), nil))

	rec := postJSON(t, h.Login, "/auth/login",
		`{"email":"alice@example.com","password":"right"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := utils.VerifyAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(3), claims.UserID)
	require.Equal(t, "admin", claims.Role)
}
