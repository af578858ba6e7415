package postgres

import (
	"context"
	"testing"

	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/repository"
	"traiteur/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &entity.Customer{
		Name:              "Acme",
		Info:              "Weekly lunch",
		EmailAddress:      "a@acme.test",
		CompanyName:       "Acme NV",
		VATNumber:         "BE0999",
		Address:           "Main street 1",
		IdentityAccountID: strPtr("U1"),
	}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	assert.NotZero(t, customer.ID)
	assert.Equal(t, int64(1), customer.Version)
	assert.False(t, customer.CreatedAt.IsZero())

	byID, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", byID.Name)
	assert.Equal(t, entity.RatingB, byID.Rating)
	assert.Equal(t, "BE0999", byID.VATNumber)

	byIdentity, err := repo.FindCustomerByIdentity(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byIdentity.ID)
}

func TestCustomerRepository_NotFound(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindCustomerByID(ctx, 404)
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))

	_, err = repo.FindCustomerByIdentity(ctx, "nobody")
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))

	err = repo.DeleteCustomer(ctx, 404)
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestCustomerRepository_IdentityLinkIsUnique(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateCustomer(ctx, &entity.Customer{Name: "First", EmailAddress: "1@x.test", IdentityAccountID: strPtr("U1")}))
	require.NoError(t, repo.CreateCustomer(ctx, &entity.Customer{Name: "Unlinked", EmailAddress: "2@x.test"}))
	require.NoError(t, repo.CreateCustomer(ctx, &entity.Customer{Name: "Also unlinked", EmailAddress: "3@x.test"}))

	err := repo.CreateCustomer(ctx, &entity.Customer{Name: "Second", EmailAddress: "4@x.test", IdentityAccountID: strPtr("U1")})
	assert.True(t, errors.Is(err, repository.ErrIdentityAlreadyLinked), "got %v", err)
}

func TestCustomerRepository_UpdateBumpsVersion(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := &entity.Customer{Name: "Acme", EmailAddress: "a@acme.test", Rating: entity.RatingC}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	customer.Name = "Acme Catering"
	customer.Rating = entity.RatingA
	require.NoError(t, repo.UpdateCustomer(ctx, customer))
	assert.Equal(t, int64(2), customer.Version)

	stored, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Catering", stored.Name)
	assert.Equal(t, entity.RatingA, stored.Rating)
	assert.Equal(t, int64(2), stored.Version)
}

func TestCustomerRepository_UpdateWithStaleVersionConflicts(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := &entity.Customer{Name: "Acme", EmailAddress: "a@acme.test"}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	first := *customer
	second := *customer

	first.Name = "First writer"
	require.NoError(t, repo.UpdateCustomer(ctx, &first))

	second.Name = "Second writer"
	err := repo.UpdateCustomer(ctx, &second)
	assert.True(t, errors.Is(err, repository.ErrCustomerConflict))

	stored, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "First writer", stored.Name)
}

func TestCustomerRepository_UpdateMissingRowConflicts(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	err := repo.UpdateCustomer(context.Background(), &entity.Customer{ID: 99, Name: "Ghost", EmailAddress: "g@x.test"})
	assert.True(t, errors.Is(err, repository.ErrCustomerConflict))
}

func TestCustomerRepository_UpdateCanClearIdentityLink(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := &entity.Customer{Name: "Acme", EmailAddress: "a@acme.test", IdentityAccountID: strPtr("U1")}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	customer.IdentityAccountID = nil
	require.NoError(t, repo.UpdateCustomer(ctx, customer))

	_, err := repo.FindCustomerByIdentity(ctx, "U1")
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestCustomerRepository_ListAndDelete(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.CreateCustomer(ctx, &entity.Customer{Name: name, EmailAddress: name + "@x.test"}))
	}

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "A", customers[0].Name)

	require.NoError(t, repo.DeleteCustomer(ctx, customers[1].ID))

	customers, err = repo.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestOrderRepository_CountOrdersByCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]model.OrderModel{{CustomerID: 7}, {CustomerID: 7}, {CustomerID: 7}, {CustomerID: 8}}).Error)

	count, err := repo.CountOrdersByCustomer(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountOrdersByCustomer(ctx, 9)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Acme", EmailAddress: "a@acme.test"}
	require.NoError(t, NewCustomerRepository(db).CreateCustomer(ctx, customer))

	sentinel := errors.New("abort")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCustomerRepository().DeleteCustomer(ctx, customer.ID); err != nil {
			return err
		}

		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))

	_, err = NewCustomerRepository(db).FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err, "delete must be rolled back")
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Acme", EmailAddress: "a@acme.test"}
	require.NoError(t, NewCustomerRepository(db).CreateCustomer(ctx, customer))

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		count, err := factory.NewOrderRepository().CountOrdersByCustomer(ctx, customer.ID)
		if err != nil {
			return err
		}
		assert.Zero(t, count)

		return factory.NewCustomerRepository().DeleteCustomer(ctx, customer.ID)
	})
	require.NoError(t, err)

	_, err = NewCustomerRepository(db).FindCustomerByID(ctx, customer.ID)
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestTransactionManager_BeginFailureIsTransactionFailed(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	assert.False(t, called)
}
