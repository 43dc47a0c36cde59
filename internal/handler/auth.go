package handler

import (
	"context"  // context with cancellation for DB calls
	"errors"   // sentinel matching
	"log"      // server-side logging of store failures
	"net/http" // HTTP status codes
	"strings"  // input normalization
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/kinus-bit/bookStore/internal/config"
	"github.com/kinus-bit/bookStore/internal/model"
	"github.com/kinus-bit/bookStore/internal/repository"
	"github.com/kinus-bit/bookStore/internal/utils"
)

// AuthHandler bundles dependencies for the credential endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type tokenResp struct {
	Token string `json:"token"`
}

// Register creates a user and returns a signed token immediately, so a
// fresh signup is logged in without a second round-trip. New accounts
// always get role standard and status active; there is no way to
// register as admin.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username, email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, req.Password,
		model.RoleStandard, model.StatusActive, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "username already exists"})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already exists"})
		}
		log.Printf("auth: create user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, model.RoleStandard, req.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("auth: issue token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: access.Token})
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password are distinguishable on purpose: the legacy service
// behaves this way and clients key off the two statuses. Note that
// last_login is not updated here, matching the legacy service.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("auth: query user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "incorrect password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("auth: issue token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: access.Token})
}

// Me is a simple protected endpoint echoing the verified identity back.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"role":     c.Get("role"),
		"username": c.Get("username"),
	})
}
