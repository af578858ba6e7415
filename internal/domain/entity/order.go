package entity

import "time"

// Order is a catering order placed by a customer. Only its ownership matters here.
type Order struct {
	ID         int64
	CustomerID int64
	CreatedAt  time.Time
}
