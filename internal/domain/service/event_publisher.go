package service

import (
	"context"
	"time"
)

// CustomerEventType names a customer lifecycle transition.
type CustomerEventType string

const (
	CustomerCreated CustomerEventType = "customer.created"
	CustomerUpdated CustomerEventType = "customer.updated"
	CustomerDeleted CustomerEventType = "customer.deleted"
)

// CustomerEvent is published after a customer record changed.
type CustomerEvent struct {
	RequestID         string            `json:"request_id,omitempty"` // For distributed tracing
	EventID           string            `json:"event_id"`
	Type              CustomerEventType `json:"type"`
	CustomerID        int64             `json:"customer_id"`
	IdentityAccountID string            `json:"identity_account_id,omitempty"`
	ActorID           string            `json:"actor_id"`
	OccurredAt        time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCustomerEvent publishes a customer lifecycle event
	PublishCustomerEvent(ctx context.Context, event *CustomerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
