package models

import "time"

// CartItem joins a browsing session to a product with a quantity.
// At most one CartItem exists per (sessionId, productId) pair; repeat
// adds merge into the existing line.
type CartItem struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId,omitempty"`
	SessionID string    `json:"sessionId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItemInput carries an add-to-cart request. SessionID is filled in
// by the route layer, never by the client.
type CartItemInput struct {
	UserID    *int   `json:"userId,omitempty"`
	SessionID string `json:"-"`
	ProductID int    `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}
