package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kinus-bit/bookStore/internal/cart"
	"github.com/kinus-bit/bookStore/internal/queue"
	"github.com/kinus-bit/bookStore/internal/repository"
	publisher "github.com/kinus-bit/bookStore/internal/service"
)

// OrderHandler turns a client's cart into a priced order summary. There is
// no payment step: checkout prices the submitted lines against the catalog
// with the cart engine, hands the summary back, and emits an order.placed
// event for downstream consumers.
type OrderHandler struct {
	Books *repository.BookRepo
}

func NewOrderHandler(b *repository.BookRepo) *OrderHandler { return &OrderHandler{Books: b} }

type checkoutLine struct {
	BookID   uint64 `json:"book_id"`
	Quantity int    `json:"quantity"`
}
type checkoutReq struct {
	Lines []checkoutLine `json:"lines"`
}
type checkoutResp struct {
	OrderID  string  `json:"order_id"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Checkout prices the submitted cart. Lines with a non-positive quantity
// are dropped (the cart never holds them), duplicate book ids are merged,
// and unit prices always come from the catalog, never from the client.
// An unknown book id fails the whole request; a broker outage does not.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	// Merge duplicates up front, keeping first-seen order.
	order := make([]uint64, 0, len(req.Lines))
	qty := make(map[uint64]int, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			continue
		}
		if _, seen := qty[l.BookID]; !seen {
			order = append(order, l.BookID)
		}
		qty[l.BookID] += l.Quantity
	}
	if len(order) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cart is empty"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	crt := cart.New()
	var lines []queue.OrderLine
	for _, id := range order {
		b, err := h.Books.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"message": fmt.Sprintf("book %d not found", id)})
			}
			log.Printf("checkout: load book failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
		}
		crt.AddItem(b)
		crt.UpdateQuantity(b.ID, qty[id])
		lines = append(lines, queue.OrderLine{
			BookID: b.ID, Title: b.Title, Quantity: qty[id], UnitPrice: b.Price,
		})
	}

	summary := crt.OrderSummary()
	orderID := uuid.NewString()

	userID, _ := c.Get("user_id").(uint64)
	username, _ := c.Get("username").(string)
	ev := queue.OrderPlacedEvent{
		OrderID:  orderID,
		UserID:   userID,
		Username: username,
		Lines:    lines,
		Subtotal: summary.Subtotal,
		Tax:      summary.Tax,
		Total:    summary.Total,
		PlacedAt: time.Now().UTC().Format(time.RFC3339),
	}
	// Best effort: the publisher logs its own failures.
	_ = publisher.PublishOrderPlaced(ctx, ev)

	return c.JSON(http.StatusOK, checkoutResp{
		OrderID:  orderID,
		Subtotal: summary.Subtotal,
		Tax:      summary.Tax,
		Total:    summary.Total,
	})
}
