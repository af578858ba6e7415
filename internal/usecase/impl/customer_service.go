// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"time"

	"traiteur/config"
	deliverycontext "traiteur/internal/delivery/context"
	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/grid"
	"traiteur/internal/domain/repository"
	"traiteur/internal/domain/service"
	"traiteur/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager          repository.TransactionManager
	customerRepo       repository.CustomerRepository
	orderRepo          repository.OrderRepository
	identityRepo       repository.IdentityRepository
	publisher          service.EventPublisher
	validator          *draftValidator
	enforceDeleteGuard bool
	maxGridPageSize    int
	logger             *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	IdentityRepo repository.IdentityRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	srv := &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		identityRepo: params.IdentityRepo,
		publisher:    params.Publisher,
		validator:    newDraftValidator(),
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Customers != nil {
		srv.enforceDeleteGuard = params.Config.Customers.EnforceDeleteGuard
		srv.maxGridPageSize = params.Config.Customers.Grid.MaxPageSize
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List only authorizes the index page; its rows are served by QueryGrid.
func (srv *customerService) List(ctx context.Context, caller entity.Caller) error {
	return requireAdministrator(caller)
}

// ViewDetails returns the caller's own record for the Customer role and the record at id otherwise.
func (srv *customerService) ViewDetails(ctx context.Context, caller entity.Caller, id *int64) (*entity.Customer, error) {
	return srv.resolveCustomer(ctx, caller, id)
}

// PrepareCreate returns an empty create form with the default rating preselected.
func (srv *customerService) PrepareCreate(ctx context.Context, caller entity.Caller) (*usecase.CustomerForm, error) {
	if err := requireAdministrator(caller); err != nil {
		return nil, err
	}

	accounts, err := srv.customerAccounts(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.CustomerForm{
		Draft:    usecase.CustomerDraft{Rating: entity.DefaultRating},
		Accounts: accounts,
	}, nil
}

// SubmitCreate validates and stores a new customer.
func (srv *customerService) SubmitCreate(ctx context.Context, caller entity.Caller, draft usecase.CustomerDraft) (*usecase.SubmitOutcome, error) {
	if err := requireAdministrator(caller); err != nil {
		return nil, err
	}

	draft = normalizeDraft(draft)
	draft.ID = 0
	draft.Version = 0

	fieldErrors, err := srv.validateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		return srv.redisplay(ctx, draft, fieldErrors)
	}

	customer := customerFromDraft(draft)
	if err := srv.customerRepo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrIdentityAlreadyLinked) {
			return srv.redisplay(ctx, draft, map[string]string{fieldIdentityAccountID: msgIdentityAlreadyLinked})
		}
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return srv.redisplay(ctx, draft, map[string]string{"": msgRejectedByStore})
		}
		srv.log(ctx).Error("Failed to create customer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer created", slog.Int64("customerID", customer.ID), slog.String("actorID", caller.IdentityID))
	srv.publish(ctx, service.CustomerCreated, caller, customer)

	return &usecase.SubmitOutcome{Customer: customer, Redirect: usecase.RedirectList}, nil
}

// PrepareEdit returns the edit form for the resolved customer.
func (srv *customerService) PrepareEdit(ctx context.Context, caller entity.Caller, id *int64) (*usecase.CustomerForm, error) {
	customer, err := srv.resolveCustomer(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	accounts, err := srv.customerAccounts(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.CustomerForm{
		Draft:    draftFromCustomer(customer),
		Accounts: accounts,
	}, nil
}

// SubmitEdit validates and stores changes to an existing customer.
func (srv *customerService) SubmitEdit(ctx context.Context, caller entity.Caller, id int64, draft usecase.CustomerDraft) (*usecase.SubmitOutcome, error) {
	if id != draft.ID {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("route id does not match submitted id")
	}

	draft = normalizeDraft(draft)

	redirect := usecase.RedirectList
	switch caller.Role {
	case entity.RoleCustomer:
		if err := srv.authorizeSelfEdit(ctx, caller, id, draft); err != nil {
			return nil, err
		}
		redirect = usecase.RedirectDetails
	case entity.RoleAdministrator:
	default:
		return nil, domainerrors.ErrForbidden
	}

	fieldErrors, err := srv.validateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		return srv.redisplay(ctx, draft, fieldErrors)
	}

	customer := customerFromDraft(draft)
	if err := srv.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return srv.handleUpdateError(ctx, draft, err)
	}

	srv.log(ctx).Info("Customer updated", slog.Int64("customerID", customer.ID), slog.String("actorID", caller.IdentityID))
	srv.publish(ctx, service.CustomerUpdated, caller, customer)

	return &usecase.SubmitOutcome{Customer: customer, Redirect: redirect}, nil
}

// authorizeSelfEdit restricts a Customer caller to the record linked to its own identity account.
func (srv *customerService) authorizeSelfEdit(ctx context.Context, caller entity.Caller, id int64, draft usecase.CustomerDraft) error {
	if caller.IdentityID == "" || draft.IdentityAccountID == nil || *draft.IdentityAccountID != caller.IdentityID {
		return domainerrors.ErrCustomerNotFound.WrapMessage("identity link does not match caller")
	}

	stored, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return srv.mapLookupError(ctx, err)
	}
	if !stored.IsLinkedTo(caller.IdentityID) {
		return domainerrors.ErrCustomerNotFound.WrapMessage("customer is not linked to caller")
	}

	return nil
}

func (srv *customerService) handleUpdateError(ctx context.Context, draft usecase.CustomerDraft, err error) (*usecase.SubmitOutcome, error) {
	switch {
	case errors.Is(err, repository.ErrIdentityAlreadyLinked):
		return srv.redisplay(ctx, draft, map[string]string{fieldIdentityAccountID: msgIdentityAlreadyLinked})
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return srv.redisplay(ctx, draft, map[string]string{"": msgRejectedByStore})
	case errors.Is(err, repository.ErrCustomerConflict):
		// Re-check once: a vanished record is NotFound, anything else is a lost race.
		_, findErr := srv.customerRepo.FindCustomerByID(ctx, draft.ID)
		if errors.Is(findErr, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer deleted during update")
		}
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to re-check customer after update conflict")
		}
		srv.log(ctx).Warn("Concurrent customer modification", slog.Int64("customerID", draft.ID), slog.Int64("version", draft.Version))

		return nil, domainerrors.ErrConcurrentModification.WrapMessage("customer update conflict")
	default:
		srv.log(ctx).Error("Failed to update customer", slog.Int64("customerID", draft.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update customer")
	}
}

// PrepareDelete returns the confirmation view, or a blocked view when orders reference the customer.
func (srv *customerService) PrepareDelete(ctx context.Context, caller entity.Caller, id *int64) (*usecase.DeleteView, error) {
	if err := requireAdministrator(caller); err != nil {
		return nil, err
	}
	if id == nil {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("missing customer id")
	}

	customer, err := srv.customerRepo.FindCustomerByID(ctx, *id)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err)
	}

	count, err := srv.orderRepo.CountOrdersByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customer orders")
	}

	return &usecase.DeleteView{
		Customer:   customer,
		OrderCount: count,
		CanDelete:  count == 0,
	}, nil
}

// ConfirmDelete removes a customer. Orders are only re-checked when the delete guard is enabled.
func (srv *customerService) ConfirmDelete(ctx context.Context, caller entity.Caller, id int64) error {
	if err := requireAdministrator(caller); err != nil {
		return err
	}

	var deleted *entity.Customer
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		customerRepo := factory.NewCustomerRepository()

		customer, err := customerRepo.FindCustomerByID(ctx, id)
		if err != nil {
			return err
		}

		if srv.enforceDeleteGuard {
			count, err := factory.NewOrderRepository().CountOrdersByCustomer(ctx, id)
			if err != nil {
				return errors.Wrap(err, "failed to count customer orders")
			}
			if count > 0 {
				return domainerrors.ErrCustomerHasOrders.WrapMessage("delete guard rejected customer with orders")
			}
		}

		if err := customerRepo.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		deleted = customer

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("customer not found for delete")
		}
		if errors.Is(err, domainerrors.ErrCustomerHasOrders) {
			return err
		}
		srv.log(ctx).Error("Failed to delete customer", slog.Int64("customerID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Info("Customer deleted", slog.Int64("customerID", id), slog.String("actorID", caller.IdentityID))
	srv.publish(ctx, service.CustomerDeleted, caller, deleted)

	return nil
}

// QueryGrid pages, sorts and filters the full customer collection.
func (srv *customerService) QueryGrid(ctx context.Context, caller entity.Caller, req grid.Request) (*grid.Result[*entity.Customer], error) {
	if err := requireAdministrator(caller); err != nil {
		return nil, err
	}

	if srv.maxGridPageSize > 0 && req.PageSize > srv.maxGridPageSize {
		req.PageSize = srv.maxGridPageSize
	}

	customers, err := srv.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	result, err := grid.Apply(customers, req, customerGridSchema)
	if err != nil {
		return nil, domainerrors.ErrInvalidGridRequest.WrapMessage(err.Error())
	}

	return result, nil
}

// resolveCustomer applies the shared lookup rule of the details and edit pages.
func (srv *customerService) resolveCustomer(ctx context.Context, caller entity.Caller, id *int64) (*entity.Customer, error) {
	var (
		customer *entity.Customer
		err      error
	)

	switch caller.Role {
	case entity.RoleCustomer:
		if caller.IdentityID == "" {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("caller has no identity")
		}
		customer, err = srv.customerRepo.FindCustomerByIdentity(ctx, caller.IdentityID)
	case entity.RoleAdministrator:
		if id == nil {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("missing customer id")
		}
		customer, err = srv.customerRepo.FindCustomerByID(ctx, *id)
	default:
		return nil, domainerrors.ErrForbidden
	}
	if err != nil {
		return nil, srv.mapLookupError(ctx, err)
	}

	return customer, nil
}

func (srv *customerService) mapLookupError(ctx context.Context, err error) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return domainerrors.ErrCustomerNotFound.WrapMessage("customer lookup")
	}
	srv.log(ctx).Error("Failed to load customer", slog.Any("error", err))

	return errors.Wrap(err, "failed to load customer")
}

func (srv *customerService) customerAccounts(ctx context.Context) ([]usecase.AccountOption, error) {
	accounts, err := srv.identityRepo.ListAccountsInRole(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer accounts")
	}

	options := make([]usecase.AccountOption, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, usecase.AccountOption{ID: account.ID, UserName: account.UserName})
	}

	return options, nil
}

// redisplay rebuilds a form from the submitted draft so the user keeps what they typed.
func (srv *customerService) redisplay(ctx context.Context, draft usecase.CustomerDraft, fieldErrors map[string]string) (*usecase.SubmitOutcome, error) {
	accounts, err := srv.customerAccounts(ctx)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Customer form rejected", slog.Any("errors", fieldErrors))

	return &usecase.SubmitOutcome{
		Form: &usecase.CustomerForm{
			Draft:    draft,
			Accounts: accounts,
			Errors:   fieldErrors,
		},
	}, nil
}

// validateDraft returns field errors for invalid input, or an error when a collaborator failed.
func (srv *customerService) validateDraft(ctx context.Context, draft usecase.CustomerDraft) (map[string]string, error) {
	fieldErrors := srv.validator.validate(draft)
	maps.Copy(fieldErrors, draft.BindErrors)

	if draft.IdentityAccountID != nil {
		account, err := srv.identityRepo.FindAccountByID(ctx, *draft.IdentityAccountID)
		switch {
		case errors.Is(err, repository.ErrIdentityNotFound):
			fieldErrors[fieldIdentityAccountID] = msgUnknownAccount
		case err != nil:
			return nil, errors.Wrap(err, "failed to load identity account")
		case !account.Roles.Contains(entity.RoleCustomer):
			fieldErrors[fieldIdentityAccountID] = msgNotCustomerAccount
		}
	}

	return fieldErrors, nil
}

func (srv *customerService) publish(ctx context.Context, eventType service.CustomerEventType, caller entity.Caller, customer *entity.Customer) {
	if srv.publisher == nil || customer == nil {
		return
	}

	event := &service.CustomerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		CustomerID: customer.ID,
		ActorID:    caller.IdentityID,
		OccurredAt: time.Now().UTC(),
	}
	if customer.IdentityAccountID != nil {
		event.IdentityAccountID = *customer.IdentityAccountID
	}

	if err := srv.publisher.PublishCustomerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish customer event",
			slog.String("type", string(eventType)),
			slog.Int64("customerID", customer.ID),
			slog.Any("error", err),
		)
	}
}

func requireAdministrator(caller entity.Caller) error {
	if !caller.IsAdministrator() {
		return domainerrors.ErrForbidden
	}

	return nil
}

// normalizeDraft treats a blank identity link as no link.
func normalizeDraft(draft usecase.CustomerDraft) usecase.CustomerDraft {
	if draft.IdentityAccountID != nil && strings.TrimSpace(*draft.IdentityAccountID) == "" {
		draft.IdentityAccountID = nil
	}

	return draft
}

func customerFromDraft(draft usecase.CustomerDraft) *entity.Customer {
	rating := draft.Rating
	if rating == "" {
		rating = entity.DefaultRating
	}

	return &entity.Customer{
		ID:                draft.ID,
		Name:              draft.Name,
		Info:              draft.Info,
		EmailAddress:      draft.EmailAddress,
		Rating:            rating,
		CompanyName:       draft.CompanyName,
		VATNumber:         draft.VATNumber,
		Address:           draft.Address,
		IdentityAccountID: draft.IdentityAccountID,
		Version:           draft.Version,
	}
}

func draftFromCustomer(customer *entity.Customer) usecase.CustomerDraft {
	return usecase.CustomerDraft{
		ID:                customer.ID,
		Name:              customer.Name,
		Info:              customer.Info,
		EmailAddress:      customer.EmailAddress,
		Rating:            customer.Rating,
		CompanyName:       customer.CompanyName,
		VATNumber:         customer.VATNumber,
		Address:           customer.Address,
		IdentityAccountID: customer.IdentityAccountID,
		Version:           customer.Version,
	}
}
