package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinus-bit/bookStore/internal/model"
	"github.com/kinus-bit/bookStore/internal/repository"
)

// BookHandler exposes catalog CRUD. Reads require a valid token; mutations
// are admin-gated by the router.
type BookHandler struct {
	Books *repository.BookRepo
}

func NewBookHandler(b *repository.BookRepo) *BookHandler { return &BookHandler{Books: b} }

type bookReq struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

type bookResp struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

func toBookResp(b model.Book) bookResp {
	return bookResp{
		ID: b.ID, Title: b.Title, Author: b.Author, Price: b.Price,
		Genre: b.Genre, Description: b.Description, ImageURL: b.ImageURL,
		Rating: b.Rating, Stock: b.Stock,
	}
}

func (r bookReq) toModel() model.Book {
	return model.Book{
		Title: strings.TrimSpace(r.Title), Author: strings.TrimSpace(r.Author),
		Price: r.Price, Genre: r.Genre, Description: r.Description,
		ImageURL: r.ImageURL, Rating: r.Rating, Stock: r.Stock,
	}
}

// idParam parses the :id route parameter. A non-numeric id is treated the
// same as an unknown one.
func idParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// Create inserts a new book (admin only).
func (h *BookHandler) Create(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" || req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "title, author and a non-negative price are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Books.Create(ctx, req.toModel())
	if err != nil {
		log.Printf("books: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create book failed"})
	}
	b, err := h.Books.GetByID(ctx, id)
	if err != nil {
		log.Printf("books: load after create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create book failed"})
	}
	return c.JSON(http.StatusCreated, toBookResp(b))
}

// Get returns a single book by id.
func (h *BookHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		log.Printf("books: get failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	return c.JSON(http.StatusOK, toBookResp(b))
}

// List returns the whole catalog. The router wraps this route in the
// response cache, so repeated browsing does not hit the database.
func (h *BookHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	books, err := h.Books.List(ctx)
	if err != nil {
		log.Printf("books: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	out := make([]bookResp, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResp(b))
	}
	return c.JSON(http.StatusOK, out)
}

// Update rewrites a book (admin only).
func (h *BookHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Books.Update(ctx, id, req.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		log.Printf("books: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update book failed"})
	}
	return c.JSON(http.StatusOK, toBookResp(b))
}

// Delete removes a book (admin only).
func (h *BookHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		log.Printf("books: delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete book failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book deleted"})
}
