package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/kinus-bit/bookStore/internal/repository"
)

func newOrderHandler(t *testing.T) (*OrderHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewOrderHandler(repository.NewBookRepo(db)), mock
}

func bookRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "author", "price", "genre", "description", "image_url", "rating", "stock", "created_at", "updated_at"})
}

func addBookRow(rows *sqlmock.Rows, id uint64, title string, price float64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, "author", price, "fiction", "", "", 0.0, 10, now, now)
}

func TestCheckout_PricesCartFromCatalog(t *testing.T) {
	h, mock := newOrderHandler(t)

	// Duplicate lines for the same book merge; the catalog price wins
	// over anything the client might claim.
	mock.ExpectQuery("SELECT .+ FROM books WHERE id=.+").
		WithArgs(uint64(1)).WillReturnRows(addBookRow(bookRows(), 1, "Dune", 10.00))

	rec := postJSON(t, h.Checkout, "/v1/orders/checkout",
		`{"lines":[{"book_id":1,"quantity":1},{"book_id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OrderID  string  `json:"order_id"`
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.OrderID)
	require.InDelta(t, 30.00, resp.Subtotal, 1e-9)
	require.InDelta(t, 2.40, resp.Tax, 1e-9)
	require.InDelta(t, 32.40, resp.Total, 1e-9)
}

func TestCheckout_UnknownBook(t *testing.T) {
	h, mock := newOrderHandler(t)

	mock.ExpectQuery("SELECT .+ FROM books WHERE id=.+").
		WithArgs(uint64(9)).WillReturnRows(bookRows())

	rec := postJSON(t, h.Checkout, "/v1/orders/checkout",
		`{"lines":[{"book_id":9,"quantity":1}]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckout_EmptyCart(t *testing.T) {
	h, _ := newOrderHandler(t)

	// No lines at all, and lines normalized away by non-positive
	// quantities, both count as empty.
	for _, body := range []string{
		`{"lines":[]}`,
		`{"lines":[{"book_id":1,"quantity":0},{"book_id":2,"quantity":-1}]}`,
	} {
		rec := postJSON(t, h.Checkout, "/v1/orders/checkout", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}
