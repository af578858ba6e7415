package model

import "time"

// OrderModel mirrors the 'orders' table. Only the customer reference is read here.
type OrderModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"not null;index:idx_orders_customer_id"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
