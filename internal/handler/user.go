package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinus-bit/bookStore/internal/config"
	"github.com/kinus-bit/bookStore/internal/model"
	"github.com/kinus-bit/bookStore/internal/repository"
)

// UserHandler exposes admin-only user management. Every response type
// here deliberately omits the password hash.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type userResp struct {
	ID        uint64     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	JoinDate  time.Time  `json:"joinDate"`
	LastLogin *time.Time `json:"lastLogin"`
}

func toUserResp(u model.User) userResp {
	return userResp{
		ID: u.ID, Username: u.Username, Email: u.Email,
		Role: u.Role, Status: u.Status,
		JoinDate: u.JoinDate, LastLogin: u.LastLogin,
	}
}

type createUserReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type updateUserReq struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin"`
}

// normalizeRole maps arbitrary input onto the known role set, defaulting
// to standard. Same idea for normalizeStatus and active.
func normalizeRole(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), model.RoleAdmin) {
		return model.RoleAdmin
	}
	return model.RoleStandard
}

func normalizeStatus(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), model.StatusInactive) {
		return model.StatusInactive
	}
	return model.StatusActive
}

// List returns all users without their password hashes.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		log.Printf("users: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResp(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("users: get failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// Create inserts a user with an explicit role and status. Unlike public
// registration this may mint admins, which is why the route sits behind
// the admin gate.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
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
		normalizeRole(req.Role), normalizeStatus(req.Status), h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "username already exists"})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already exists"})
		}
		log.Printf("users: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		log.Printf("users: load after create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}
	return c.JSON(http.StatusCreated, toUserResp(u))
}

// Update rewrites a user's profile fields. Passwords are not editable
// through this endpoint.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and email are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Update(ctx, id, req.Username, req.Email,
		normalizeRole(req.Role), normalizeStatus(req.Status), req.LastLogin)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "username already exists"})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already exists"})
		}
		log.Printf("users: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update user failed"})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("users: delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
