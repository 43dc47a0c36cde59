// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderLine is one priced cart line inside an order event.
type OrderLine struct {
	BookID    uint64  `json:"book_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderPlacedEvent is published when a checkout completes. It carries the
// full priced breakdown so downstream consumers can log or trigger
// fulfilment without querying the primary database. Checkout itself is
// local computation; this event is the only thing that leaves the process.
type OrderPlacedEvent struct {
	OrderID  string      `json:"order_id"`
	UserID   uint64      `json:"user_id"`
	Username string      `json:"username"`
	Lines    []OrderLine `json:"lines"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
	PlacedAt string      `json:"placed_at"`
}
