// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/repository"
	"traiteur/internal/infra/persistence/model"
	"traiteur/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	q *query.Query
}

// NewCustomerRepository is the constructor for customerRepository.
// It wraps the connection (or transaction) in the GORM Gen query builder.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		q: query.Use(db),
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.ID = 0
	customerM.Version = 1

	if err := repo.q.CustomerModel.WithContext(ctx).Create(customerM); err != nil {
		return mapCustomerWriteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.Version = customerM.Version
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by its internal ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c := repo.q.CustomerModel

	customerM, err := c.WithContext(ctx).Where(c.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer by ID")
	}

	return toCustomerDomain(customerM), nil
}

// FindCustomerByIdentity retrieves the customer linked to an identity account.
func (repo *customerRepository) FindCustomerByIdentity(ctx context.Context, identityID string) (*entity.Customer, error) {
	c := repo.q.CustomerModel

	customerM, err := c.WithContext(ctx).Where(c.IdentityAccountID.Eq(identityID)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer by identity")
	}

	return toCustomerDomain(customerM), nil
}

// ListCustomers returns every customer ordered by ID.
func (repo *customerRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	c := repo.q.CustomerModel

	customerModels, err := c.WithContext(ctx).Order(c.ID).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// UpdateCustomer writes the editable columns and bumps the version.
// A non-zero Version must match the stored row, otherwise ErrCustomerConflict is returned.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	c := repo.q.CustomerModel
	customerM := fromCustomerDomain(customer)

	update := c.WithContext(ctx).Where(c.ID.Eq(customerM.ID))
	if customerM.Version > 0 {
		update = update.Where(c.Version.Eq(customerM.Version))
	}

	result, err := update.Updates(map[string]any{
		"name":                customerM.Name,
		"info":                customerM.Info,
		"email_address":       customerM.EmailAddress,
		"rating":              customerM.Rating,
		"company_name":        customerM.CompanyName,
		"vat_number":          customerM.VATNumber,
		"address":             customerM.Address,
		"identity_account_id": customerM.IdentityAccountID,
		"version":             gorm.Expr("version + 1"),
		"updated_at":          time.Now().UTC(),
	})
	if err != nil {
		return mapCustomerWriteError(err, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerConflict
	}

	stored, err := c.WithContext(ctx).Where(c.ID.Eq(customerM.ID)).First()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload updated customer")
	}
	customer.Version = stored.Version
	customer.CreatedAt = stored.CreatedAt
	customer.UpdatedAt = stored.UpdatedAt

	return nil
}

// DeleteCustomer removes a customer by its ID.
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	c := repo.q.CustomerModel

	result, err := c.WithContext(ctx).Where(c.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer")
	}

	// If no rows were affected, it means the customer was not found.
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func mapCustomerWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrIdentityAlreadyLinked, details)
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:                data.ID,
		Name:              data.Name,
		Info:              data.Info,
		EmailAddress:      data.EmailAddress,
		Rating:            entity.Rating(data.Rating),
		CompanyName:       data.CompanyName,
		VATNumber:         data.VATNumber,
		Address:           data.Address,
		IdentityAccountID: data.IdentityAccountID,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	rating := data.Rating
	if rating == "" {
		rating = entity.DefaultRating
	}

	return &model.CustomerModel{
		ID:                data.ID,
		Name:              data.Name,
		Info:              data.Info,
		EmailAddress:      data.EmailAddress,
		Rating:            rating.String(),
		CompanyName:       data.CompanyName,
		VATNumber:         data.VATNumber,
		Address:           data.Address,
		IdentityAccountID: data.IdentityAccountID,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
