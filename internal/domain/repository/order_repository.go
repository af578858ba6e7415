package repository

import "context"

// OrderRepository is the order ledger as seen by the customer controller.
type OrderRepository interface {
	// CountOrdersByCustomer returns how many orders reference the customer.
	CountOrdersByCustomer(ctx context.Context, customerID int64) (int64, error)
}
