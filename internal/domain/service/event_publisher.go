package service

import (
	"context"
)

// PurchaseEvent represents a completed purchase, published for async
// processing (seller notifications, sales reporting).
type PurchaseEvent struct {
	PurchaseID string  `json:"purchase_id"`
	ArtworkID  string  `json:"artwork_id"`
	Title      string  `json:"title"`
	BuyerID    string  `json:"buyer_id"`
	SellerID   string  `json:"seller_id"`
	Price      float64 `json:"price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseEvent publishes a purchase event for async processing
	PublishPurchaseEvent(ctx context.Context, event *PurchaseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
