package postgres

import (
	"context"

	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/repository"
	"traiteur/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	q *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		q: query.Use(db),
	}
}

// CountOrdersByCustomer returns how many orders reference the customer.
func (repo *orderRepository) CountOrdersByCustomer(ctx context.Context, customerID int64) (int64, error) {
	o := repo.q.OrderModel

	count, err := o.WithContext(ctx).Where(o.CustomerID.Eq(customerID)).Count()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count customer orders")
	}

	return count, nil
}
