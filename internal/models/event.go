package models

import "time"

// Product lifecycle event types.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent describes a change that was committed to the product store.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewProductEvent builds an event of the given type for p.
func NewProductEvent(eventType string, p Product) ProductEvent {
	return ProductEvent{
		Type:       eventType,
		ProductID:  p.ID,
		Name:       p.Name,
		Value:      p.Value,
		OccurredAt: time.Now().UTC(),
	}
}
