// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"traiteur/internal/domain/entity"
	"traiteur/internal/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer matches the lookup.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerConflict is returned when an update matched no row for the expected version.
	ErrCustomerConflict = errors.New("customer update conflict")
	// ErrIdentityAlreadyLinked is returned when an identity account is already bound to another customer.
	ErrIdentityAlreadyLinked = errors.New("identity account already linked to a customer")
)

// CustomerRepository is the customer directory.
type CustomerRepository interface {
	// CreateCustomer persists a new customer and fills in the generated ID, version and timestamps.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by its internal ID.
	// Returns ErrCustomerNotFound if no such customer exists.
	FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindCustomerByIdentity retrieves the customer linked to an identity account.
	// Returns ErrCustomerNotFound if the account owns no customer.
	FindCustomerByIdentity(ctx context.Context, identityID string) (*entity.Customer, error)

	// ListCustomers returns every customer ordered by ID.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// UpdateCustomer stores the customer fields. A non-zero Version is used as the
	// optimistic concurrency token. Returns ErrCustomerConflict when no row matched.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeleteCustomer removes a customer by its ID.
	// Returns ErrCustomerNotFound if no row was deleted.
	DeleteCustomer(ctx context.Context, id int64) error
}
