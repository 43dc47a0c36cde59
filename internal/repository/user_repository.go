package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/kinus-bit/bookStore/internal/model"
	"github.com/kinus-bit/bookStore/internal/utils"
)

// UserRepo is the credential store: all reads and writes against the
// `users` table go through it.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,username,email,password_hash,role,status,join_date,last_login"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.JoinDate, &u.LastLogin)
	return u, err
}

// Create hashes the password and inserts a new user, returning its ID.
// Uniqueness is checked username first, then email; the first conflict
// wins and the email check is skipped when the username already exists.
// The unique indexes on the table remain the real guard: if a concurrent
// insert slips past the pre-checks, the duplicate-key error is translated
// back to the same sentinel the pre-check would have produced.
func (r *UserRepo) Create(ctx context.Context, username, email, password, role, status string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username=?)", username).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameExists
	}
	err = r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email=?)", email).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrEmailExists
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, role, status) VALUES (?,?,?,?,?)",
		username, email, hash, role, status)
	if err != nil {
		if dup := translateDuplicate(err); dup != nil {
			return 0, dup
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// translateDuplicate maps a MySQL duplicate-key error (1062) to the
// sentinel for the violated index. The error text names the key, e.g.
// "Duplicate entry 'bob' for key 'users.username'".
func translateDuplicate(err error) error {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "1062") && !strings.Contains(msg, "duplicate entry") {
		return nil
	}
	if strings.Contains(msg, "username") {
		return ErrUsernameExists
	}
	if strings.Contains(msg, "email") {
		return ErrEmailExists
	}
	return ErrUsernameExists
}

// GetByEmail fetches a user by normalized email. Returns ErrNotFound when
// no user has that email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id. Returns ErrNotFound when the id is unknown.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// List returns all users ordered by id. The password hash rides along in
// the model; handlers are responsible for keeping it out of responses.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.JoinDate, &u.LastLogin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update rewrites the mutable profile fields of a user. The password hash
// is deliberately not touchable here. Returns ErrNotFound for an unknown
// id and the duplicate sentinels when the new username or email collides.
func (r *UserRepo) Update(ctx context.Context, id uint64, username, email, role, status string, lastLogin *time.Time) (model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET username=?, email=?, role=?, status=?, last_login=? WHERE id=?",
		username, email, role, status, lastLogin, id)
	if err != nil {
		if dup := translateDuplicate(err); dup != nil {
			return model.User{}, dup
		}
		return model.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Either the id is unknown or the row was already identical; a
		// follow-up read settles it.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.User{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user. Returns ErrNotFound when the id is unknown.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
