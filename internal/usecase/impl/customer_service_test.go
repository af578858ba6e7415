package impl

import (
	"context"
	"testing"

	"traiteur/config"
	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/grid"
	"traiteur/internal/domain/repository"
	"traiteur/internal/domain/service"
	mockRepo "traiteur/internal/mocks/repository"
	mockSvc "traiteur/internal/mocks/service"
	"traiteur/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
	identityRepo *mockRepo.MockIdentityRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestCustomerService(t *testing.T, cfg *config.Config) customerServiceFixtures {
	fixtures := customerServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewCustomerService(CustomerServiceParams{
		TxManager:    fixtures.txManager,
		CustomerRepo: fixtures.customerRepo,
		OrderRepo:    fixtures.orderRepo,
		IdentityRepo: fixtures.identityRepo,
		Publisher:    fixtures.publisher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

// expectTransaction runs the transactional callback against the fixture repositories.
func (f customerServiceFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo).Maybe()
}

func (f customerServiceFixtures) expectCustomerAccounts(ctx context.Context) {
	f.identityRepo.EXPECT().
		ListAccountsInRole(ctx, entity.RoleCustomer).
		Return([]*entity.IdentityAccount{
			{ID: "U1", UserName: "alice", Roles: entity.Roles{entity.RoleCustomer}},
			{ID: "U2", UserName: "bob", Roles: entity.Roles{entity.RoleCustomer}},
		}, nil)
}

func eventOfType(eventType service.CustomerEventType, customerID int64) any {
	return mock.MatchedBy(func(event *service.CustomerEvent) bool {
		return event.Type == eventType && event.CustomerID == customerID && event.EventID != ""
	})
}

var (
	adminCaller    = entity.Caller{IdentityID: "ADMIN", Role: entity.RoleAdministrator}
	customerCaller = entity.Caller{IdentityID: "U1", Role: entity.RoleCustomer}
)

func TestCustomerService_AdministratorOperations_ForbidOtherRoles(t *testing.T) {
	callers := map[string]entity.Caller{
		"customer":  customerCaller,
		"anonymous": {},
		"unknown":   {IdentityID: "X", Role: entity.Role("Chef")},
	}

	for name, caller := range callers {
		t.Run(name, func(t *testing.T) {
			fx := createTestCustomerService(t, newTestConfig(false))
			ctx := context.Background()

			err := fx.service.List(ctx, caller)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "List: %v", err)

			_, err = fx.service.PrepareCreate(ctx, caller)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "PrepareCreate: %v", err)

			_, err = fx.service.SubmitCreate(ctx, caller, usecase.CustomerDraft{Name: "Acme", EmailAddress: "a@acme.test"})
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "SubmitCreate: %v", err)

			_, err = fx.service.PrepareDelete(ctx, caller, int64Ptr(7))
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "PrepareDelete: %v", err)

			err = fx.service.ConfirmDelete(ctx, caller, 7)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "ConfirmDelete: %v", err)

			_, err = fx.service.QueryGrid(ctx, caller, grid.Request{})
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "QueryGrid: %v", err)
		})
	}
}

func TestCustomerService_List_Administrator(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))

	require.NoError(t, fx.service.List(context.Background(), adminCaller))
}

func TestCustomerService_ViewDetails_CustomerIgnoresSuppliedID(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	own := &entity.Customer{ID: 7, Name: "Own record", IdentityAccountID: stringPtr("U1")}
	fx.customerRepo.EXPECT().FindCustomerByIdentity(ctx, "U1").Return(own, nil)

	customer, err := fx.service.ViewDetails(ctx, customerCaller, int64Ptr(999))
	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.Equal(t, "Own record", customer.Name)
}

func TestCustomerService_ViewDetails_CustomerWithoutRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().FindCustomerByIdentity(ctx, "U1").Return(nil, repository.ErrCustomerNotFound)

	customer, err := fx.service.ViewDetails(ctx, customerCaller, int64Ptr(7))
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_ViewDetails_AdministratorMissingID(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))

	customer, err := fx.service.ViewDetails(context.Background(), adminCaller, nil)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_ViewDetails_AdministratorAbsentRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(404)).Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.ViewDetails(ctx, adminCaller, int64Ptr(404))
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_ViewDetails_IsIdempotent(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	stored := &entity.Customer{ID: 3, Name: "Bistro", Rating: entity.RatingA}
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(3)).Return(stored, nil).Times(2)

	first, err := fx.service.ViewDetails(ctx, adminCaller, int64Ptr(3))
	require.NoError(t, err)
	second, err := fx.service.ViewDetails(ctx, adminCaller, int64Ptr(3))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCustomerService_ViewDetails_RepositoryFailure(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find customer")
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(3)).Return(nil, dbErr)

	_, err := fx.service.ViewDetails(ctx, adminCaller, int64Ptr(3))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrCustomerNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCustomerService_PrepareCreate_DefaultsRatingAndListsAccounts(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	form, err := fx.service.PrepareCreate(ctx, adminCaller)
	require.NoError(t, err)

	assert.Equal(t, entity.RatingB, form.Draft.Rating)
	assert.Equal(t, []usecase.AccountOption{{ID: "U1", UserName: "alice"}, {ID: "U2", UserName: "bob"}}, form.Accounts)
	assert.False(t, form.HasErrors())
}

func TestCustomerService_SubmitCreate_RoundTripDefaultsRating(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	var stored *entity.Customer
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = 42
			customer.Version = 1
			stored = customer
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, eventOfType(service.CustomerCreated, 42)).Return(nil)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		Name:         "Acme",
		EmailAddress: "a@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectList, outcome.Redirect)
	assert.Nil(t, outcome.Form)
	require.NotNil(t, outcome.Customer)
	assert.Equal(t, int64(42), outcome.Customer.ID)

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(42)).RunAndReturn(func(context.Context, int64) (*entity.Customer, error) {
		return stored, nil
	})

	viewed, err := fx.service.ViewDetails(ctx, adminCaller, int64Ptr(42))
	require.NoError(t, err)
	assert.Equal(t, "Acme", viewed.Name)
	assert.Equal(t, "a@acme.test", viewed.EmailAddress)
	assert.Equal(t, entity.RatingB, viewed.Rating)
	assert.Nil(t, viewed.IdentityAccountID)
}

func TestCustomerService_SubmitCreate_KeepsSubmittedFields(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindAccountByID(ctx, "U2").
		Return(&entity.IdentityAccount{ID: "U2", Roles: entity.Roles{entity.RoleCustomer}}, nil)
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "Traiteur Dupont" &&
				c.Info == "Prefers morning deliveries" &&
				c.EmailAddress == "info@dupont.test" &&
				c.Rating == entity.RatingA &&
				c.CompanyName == "Dupont BV" &&
				c.VATNumber == "BE0123456789" &&
				c.Address == "Kerkstraat 1, Gent" &&
				c.IsLinkedTo("U2")
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, mock.Anything).Return(nil)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		ID:                99,
		Name:              "Traiteur Dupont",
		Info:              "Prefers morning deliveries",
		EmailAddress:      "info@dupont.test",
		Rating:            entity.RatingA,
		CompanyName:       "Dupont BV",
		VATNumber:         "BE0123456789",
		Address:           "Kerkstraat 1, Gent",
		IdentityAccountID: stringPtr("U2"),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectList, outcome.Redirect)
	assert.Equal(t, int64(0), outcome.Customer.ID, "client supplied ids are ignored on create")
}

func TestCustomerService_SubmitCreate_ValidationFailurePreservesInput(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	draft := usecase.CustomerDraft{
		Name:         "",
		Info:         "keeps my notes",
		EmailAddress: "not-an-email",
		Rating:       entity.Rating("Z"),
		CompanyName:  "Acme",
		VATNumber:    "BE1",
		Address:      "Main street",
	}

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, draft)
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, usecase.RedirectNone, outcome.Redirect)
	assert.Nil(t, outcome.Customer)

	assert.Equal(t, draft, outcome.Form.Draft)
	assert.Len(t, outcome.Form.Accounts, 2)
	assert.Equal(t, "is required", outcome.Form.Errors["name"])
	assert.Equal(t, "must be a valid email address", outcome.Form.Errors["emailAddress"])
	assert.Equal(t, "must be one of A B C D", outcome.Form.Errors["rating"])
	assert.NotContains(t, outcome.Form.Errors, "companyName")
}

func TestCustomerService_SubmitCreate_UnconvertibleFieldRedisplaysForm(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	draft := usecase.CustomerDraft{
		Name:         "Acme",
		EmailAddress: "a@acme.test",
		CompanyName:  "ACME Ltd",
		BindErrors:   map[string]string{"version": "has an invalid value"},
	}

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, draft)
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, "Acme", outcome.Form.Draft.Name)
	assert.Equal(t, "ACME Ltd", outcome.Form.Draft.CompanyName)
	assert.Len(t, outcome.Form.Accounts, 2)
	assert.Equal(t, map[string]string{"version": "has an invalid value"}, outcome.Form.Errors)
}

func TestCustomerService_SubmitEdit_UnconvertibleFieldRedisplaysForm(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	draft := usecase.CustomerDraft{
		ID:           7,
		Name:         "Acme",
		EmailAddress: "a@acme.test",
		BindErrors:   map[string]string{"version": "has an invalid value"},
	}

	outcome, err := fx.service.SubmitEdit(ctx, adminCaller, 7, draft)
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, usecase.RedirectNone, outcome.Redirect)
	assert.Contains(t, outcome.Form.Errors, "version")
}

func TestCustomerService_SubmitCreate_StoreConstraintRedisplaysForm(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.Anything).
		Return(domainerrors.ErrValidationFailed.WrapMessage("failed to create customer"))

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{Name: "Acme", EmailAddress: "a@acme.test"})
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, msgRejectedByStore, outcome.Form.Errors[""])
}

func TestCustomerService_SubmitCreate_RejectsNonCustomerAccount(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindAccountByID(ctx, "ADMIN").
		Return(&entity.IdentityAccount{ID: "ADMIN", Roles: entity.Roles{entity.RoleAdministrator}}, nil)
	fx.expectCustomerAccounts(ctx)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		Name:              "Acme",
		EmailAddress:      "a@acme.test",
		IdentityAccountID: stringPtr("ADMIN"),
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, msgNotCustomerAccount, outcome.Form.Errors[fieldIdentityAccountID])
}

func TestCustomerService_SubmitCreate_UnknownAccount(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.identityRepo.EXPECT().FindAccountByID(ctx, "ghost").Return(nil, repository.ErrIdentityNotFound)
	fx.expectCustomerAccounts(ctx)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		Name:              "Acme",
		EmailAddress:      "a@acme.test",
		IdentityAccountID: stringPtr("ghost"),
	})
	require.NoError(t, err)
	assert.Equal(t, msgUnknownAccount, outcome.Form.Errors[fieldIdentityAccountID])
}

func TestCustomerService_SubmitCreate_BlankAccountMeansNoLink(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool { return c.IdentityAccountID == nil })).
		Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, mock.Anything).Return(nil)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		Name:              "Acme",
		EmailAddress:      "a@acme.test",
		IdentityAccountID: stringPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectList, outcome.Redirect)
}

func TestCustomerService_SubmitCreate_IdentityAlreadyLinked(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindAccountByID(ctx, "U1").
		Return(&entity.IdentityAccount{ID: "U1", Roles: entity.Roles{entity.RoleCustomer}}, nil)
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(errors.Wrap(repository.ErrIdentityAlreadyLinked, "insert"))
	fx.expectCustomerAccounts(ctx)

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{
		Name:              "Acme",
		EmailAddress:      "a@acme.test",
		IdentityAccountID: stringPtr("U1"),
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, msgIdentityAlreadyLinked, outcome.Form.Errors[fieldIdentityAccountID])
}

func TestCustomerService_SubmitCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{Name: "Acme", EmailAddress: "a@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectList, outcome.Redirect)
}

func TestCustomerService_SubmitCreate_RepositoryFailure(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert"))

	outcome, err := fx.service.SubmitCreate(ctx, adminCaller, usecase.CustomerDraft{Name: "Acme", EmailAddress: "a@acme.test"})
	assert.Nil(t, outcome)
	require.Error(t, err)
}

func TestCustomerService_PrepareEdit_CustomerResolvesOwnRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	own := &entity.Customer{ID: 7, Name: "Own", Rating: entity.RatingC, IdentityAccountID: stringPtr("U1"), Version: 4}
	fx.customerRepo.EXPECT().FindCustomerByIdentity(ctx, "U1").Return(own, nil)
	fx.expectCustomerAccounts(ctx)

	form, err := fx.service.PrepareEdit(ctx, customerCaller, int64Ptr(1))
	require.NoError(t, err)
	assert.Equal(t, int64(7), form.Draft.ID)
	assert.Equal(t, int64(4), form.Draft.Version)
	assert.Equal(t, entity.RatingC, form.Draft.Rating)
	assert.Len(t, form.Accounts, 2)
}

func TestCustomerService_PrepareEdit_AdministratorMissingID(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))

	_, err := fx.service.PrepareEdit(context.Background(), adminCaller, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_SubmitEdit_RouteIDMismatch(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))

	_, err := fx.service.SubmitEdit(context.Background(), adminCaller, 7, usecase.CustomerDraft{ID: 8, Name: "Acme", EmailAddress: "a@acme.test"})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_SubmitEdit_CustomerCannotRepointLink(t *testing.T) {
	drafts := map[string]*string{
		"other account": stringPtr("U2"),
		"no account":    nil,
	}

	for name, link := range drafts {
		t.Run(name, func(t *testing.T) {
			fx := createTestCustomerService(t, newTestConfig(false))

			outcome, err := fx.service.SubmitEdit(context.Background(), customerCaller, 7, usecase.CustomerDraft{
				ID:                7,
				Name:              "Hijack",
				EmailAddress:      "h@x.test",
				IdentityAccountID: link,
			})
			assert.Nil(t, outcome)
			assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
			fx.customerRepo.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything)
		})
	}
}

func TestCustomerService_SubmitEdit_CustomerCannotEditForeignRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, int64(8)).
		Return(&entity.Customer{ID: 8, IdentityAccountID: stringPtr("U2")}, nil)

	_, err := fx.service.SubmitEdit(ctx, customerCaller, 8, usecase.CustomerDraft{
		ID:                8,
		Name:              "Not mine",
		EmailAddress:      "n@x.test",
		IdentityAccountID: stringPtr("U1"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_SubmitEdit_CustomerRedirectsToDetails(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, int64(7)).
		Return(&entity.Customer{ID: 7, IdentityAccountID: stringPtr("U1"), Version: 2}, nil)
	fx.identityRepo.EXPECT().
		FindAccountByID(ctx, "U1").
		Return(&entity.IdentityAccount{ID: "U1", Roles: entity.Roles{entity.RoleCustomer}}, nil)
	fx.customerRepo.EXPECT().
		UpdateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.ID == 7 && c.Version == 2 && c.Name == "New name" && c.IsLinkedTo("U1")
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, eventOfType(service.CustomerUpdated, 7)).Return(nil)

	outcome, err := fx.service.SubmitEdit(ctx, customerCaller, 7, usecase.CustomerDraft{
		ID:                7,
		Name:              "New name",
		EmailAddress:      "me@u1.test",
		Rating:            entity.RatingB,
		IdentityAccountID: stringPtr("U1"),
		Version:           2,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectDetails, outcome.Redirect)
}

func TestCustomerService_SubmitEdit_AdministratorRedirectsToList(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, eventOfType(service.CustomerUpdated, 5)).Return(nil)

	outcome, err := fx.service.SubmitEdit(ctx, adminCaller, 5, usecase.CustomerDraft{
		ID:           5,
		Name:         "Acme",
		EmailAddress: "a@acme.test",
		Rating:       entity.RatingD,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RedirectList, outcome.Redirect)
	assert.Equal(t, entity.RatingD, outcome.Customer.Rating)
}

func TestCustomerService_SubmitEdit_ConflictOnDeletedRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrCustomerConflict)
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(5)).Return(nil, repository.ErrCustomerNotFound)

	outcome, err := fx.service.SubmitEdit(ctx, adminCaller, 5, usecase.CustomerDraft{ID: 5, Name: "Acme", EmailAddress: "a@acme.test", Version: 3})
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_SubmitEdit_ConflictOnExistingRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrCustomerConflict)
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(5)).Return(&entity.Customer{ID: 5, Version: 4}, nil)

	outcome, err := fx.service.SubmitEdit(ctx, adminCaller, 5, usecase.CustomerDraft{ID: 5, Name: "Acme", EmailAddress: "a@acme.test", Version: 3})
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, domainerrors.ErrConcurrentModification))
	assert.False(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_SubmitEdit_ValidationFailurePreservesInput(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectCustomerAccounts(ctx)

	draft := usecase.CustomerDraft{
		ID:           5,
		Name:         "Acme",
		Info:         "updated notes",
		EmailAddress: "",
		Rating:       entity.RatingC,
		Address:      "Somewhere",
		Version:      3,
	}

	outcome, err := fx.service.SubmitEdit(ctx, adminCaller, 5, draft)
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	assert.Equal(t, draft, outcome.Form.Draft)
	assert.Equal(t, "is required", outcome.Form.Errors["emailAddress"])
	fx.customerRepo.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything)
}

func TestCustomerService_PrepareDelete(t *testing.T) {
	tests := []struct {
		name      string
		orders    int64
		canDelete bool
	}{
		{name: "without orders shows confirmation", orders: 0, canDelete: true},
		{name: "with orders shows no-delete", orders: 2, canDelete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t, newTestConfig(false))
			ctx := context.Background()

			fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Acme"}, nil)
			fx.orderRepo.EXPECT().CountOrdersByCustomer(ctx, int64(7)).Return(tt.orders, nil)

			view, err := fx.service.PrepareDelete(ctx, adminCaller, int64Ptr(7))
			require.NoError(t, err)
			assert.Equal(t, tt.canDelete, view.CanDelete)
			assert.Equal(t, tt.orders, view.OrderCount)
			assert.Equal(t, "Acme", view.Customer.Name)
		})
	}
}

func TestCustomerService_PrepareDelete_NotFound(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	_, err := fx.service.PrepareDelete(ctx, adminCaller, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(9)).Return(nil, repository.ErrCustomerNotFound)
	_, err = fx.service.PrepareDelete(ctx, adminCaller, int64Ptr(9))
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

// Deleting a customer that still has orders succeeds while the delete guard is off.
// PrepareDelete would have shown the no-delete view for the same record.
func TestCustomerService_ConfirmDelete_IgnoresOrdersWithoutGuard(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectTransaction()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	fx.customerRepo.EXPECT().DeleteCustomer(ctx, int64(7)).Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, eventOfType(service.CustomerDeleted, 7)).Return(nil)

	require.NoError(t, fx.service.ConfirmDelete(ctx, adminCaller, 7))
	fx.orderRepo.AssertNotCalled(t, "CountOrdersByCustomer", mock.Anything, mock.Anything)
}

func TestCustomerService_ConfirmDelete_GuardBlocksCustomerWithOrders(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(true))
	ctx := context.Background()
	fx.expectTransaction()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	fx.orderRepo.EXPECT().CountOrdersByCustomer(ctx, int64(7)).Return(int64(3), nil)

	err := fx.service.ConfirmDelete(ctx, adminCaller, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerHasOrders))
	fx.customerRepo.AssertNotCalled(t, "DeleteCustomer", mock.Anything, mock.Anything)
}

func TestCustomerService_ConfirmDelete_GuardAllowsCustomerWithoutOrders(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(true))
	ctx := context.Background()
	fx.expectTransaction()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	fx.orderRepo.EXPECT().CountOrdersByCustomer(ctx, int64(7)).Return(int64(0), nil)
	fx.customerRepo.EXPECT().DeleteCustomer(ctx, int64(7)).Return(nil)
	fx.publisher.EXPECT().PublishCustomerEvent(ctx, eventOfType(service.CustomerDeleted, 7)).Return(nil)

	require.NoError(t, fx.service.ConfirmDelete(ctx, adminCaller, 7))
}

func TestCustomerService_ConfirmDelete_MissingRecord(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()
	fx.expectTransaction()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(nil, repository.ErrCustomerNotFound)

	err := fx.service.ConfirmDelete(ctx, adminCaller, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_QueryGrid(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	fx.customerRepo.EXPECT().ListCustomers(ctx).Return([]*entity.Customer{
		{ID: 1, Name: "Acme", Rating: entity.RatingB},
		{ID: 2, Name: "Bistro", Rating: entity.RatingA},
		{ID: 3, Name: "Catering Co", Rating: entity.RatingA},
	}, nil)

	result, err := fx.service.QueryGrid(ctx, adminCaller, grid.Request{
		Page:     1,
		PageSize: 1,
		Sort:     []grid.SortDescriptor{{Field: "name", Dir: grid.DirDesc}},
		Filter:   &grid.FilterDescriptor{Field: "rating", Operator: grid.OpEq, Value: "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(3), result.Data[0].ID)
}

func TestCustomerService_QueryGrid_ClampsPageSize(t *testing.T) {
	fx := createTestCustomerService(t, newTestConfig(false))
	ctx := context.Background()

	customers := make([]*entity.Customer, 0, 80)
	for i := range 80 {
		customers = append(customers, &entity.Customer{ID: int64(i + 1)})
	}
	fx.customerRepo.EXPECT().ListCustomers(ctx).Return(customers, nil)

	result, err := fx.service.QueryGrid(ctx, adminCaller, grid.Request{Page: 1, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 80, result.Total)
	assert.Len(t, result.Data, 50)
}

func TestCustomerService_QueryGrid_Errors(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		fx := createTestCustomerService(t, newTestConfig(false))
		ctx := context.Background()
		fx.customerRepo.EXPECT().ListCustomers(ctx).Return([]*entity.Customer{{ID: 1}}, nil)

		result, err := fx.service.QueryGrid(ctx, adminCaller, grid.Request{
			Filter: &grid.FilterDescriptor{Field: "passwordHash", Operator: grid.OpEq, Value: "x"},
		})
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidGridRequest))
	})

	t.Run("directory failure", func(t *testing.T) {
		fx := createTestCustomerService(t, newTestConfig(false))
		ctx := context.Background()
		fx.customerRepo.EXPECT().ListCustomers(ctx).Return(nil, errors.New("timeout"))

		result, err := fx.service.QueryGrid(ctx, adminCaller, grid.Request{})
		assert.Nil(t, result)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
