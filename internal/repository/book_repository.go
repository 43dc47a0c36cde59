package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kinus-bit/bookStore/internal/model"
)

// BookRepo persists the catalog. It is plain field-level CRUD: every
// invariant that matters (pricing, role gates) lives above this layer.
type BookRepo struct{ DB *sql.DB }

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{DB: db} }

const bookColumns = "id,title,author,price,genre,description,image_url,rating,stock,created_at,updated_at"

func scanBook(row *sql.Row) (model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Genre, &b.Description,
		&b.ImageURL, &b.Rating, &b.Stock, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create inserts a book and returns its ID.
func (r *BookRepo) Create(ctx context.Context, b model.Book) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO books (title, author, price, genre, description, image_url, rating, stock) VALUES (?,?,?,?,?,?,?,?)",
		b.Title, b.Author, b.Price, b.Genre, b.Description, b.ImageURL, b.Rating, b.Stock)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a book by id. Returns ErrNotFound when the id is unknown.
func (r *BookRepo) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	b, err := scanBook(r.DB.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Book{}, ErrNotFound
	}
	return b, err
}

// List returns the whole catalog ordered by id.
func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Genre, &b.Description,
			&b.ImageURL, &b.Rating, &b.Stock, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update rewrites every mutable field of a book and returns the fresh row.
// Returns ErrNotFound when the id is unknown.
func (r *BookRepo) Update(ctx context.Context, id uint64, b model.Book) (model.Book, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE books SET title=?, author=?, price=?, genre=?, description=?, image_url=?, rating=?, stock=? WHERE id=?",
		b.Title, b.Author, b.Price, b.Genre, b.Description, b.ImageURL, b.Rating, b.Stock, id)
	if err != nil {
		return model.Book{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a book. Returns ErrNotFound when the id is unknown.
func (r *BookRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM books WHERE id=?", id)
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
