package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"traiteur/config"
	"traiteur/internal/delivery/api/response"
	deliverycontext "traiteur/internal/delivery/context"
	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/grid"
	"traiteur/internal/errors"
	"traiteur/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Page names rendered by the customer handler.
const (
	ViewIndex    = "Index"
	ViewDetails  = "Details"
	ViewCreate   = "Create"
	ViewEdit     = "Edit"
	ViewDelete   = "Delete"
	ViewNoDelete = "NoDelete"
)

// Redirect targets after successful posts.
const (
	PathCustomers       = "/customers"
	PathCustomerDetails = "/customers/details"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CustomerHandler serves the customer pages and the grid-data endpoint.
type CustomerHandler struct {
	customerUC     usecase.CustomerUsecase
	maskGridErrors bool
	logger         *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	maskGridErrors := true
	if params.Config.Customers != nil {
		maskGridErrors = params.Config.Customers.Grid.MaskErrors
	}

	return &CustomerHandler{
		customerUC:     params.CustomerUC,
		maskGridErrors: maskGridErrors,
		logger:         params.Logger,
	}
}

// CustomerResponse is the JSON shape of a customer in views and grid rows.
type CustomerResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Info              string    `json:"info"`
	EmailAddress      string    `json:"emailAddress"`
	Rating            string    `json:"rating"`
	CompanyName       string    `json:"companyName"`
	VATNumber         string    `json:"vatNumber"`
	Address           string    `json:"address"`
	IdentityAccountID *string   `json:"identityAccountId"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CustomerDraftRequest is a submitted create or edit form, bound from form
// fields or a JSON body. A blank identityAccountId clears the link.
type CustomerDraftRequest struct {
	ID                int64  `json:"id" form:"id"`
	Name              string `json:"name" form:"name"`
	Info              string `json:"info" form:"info"`
	EmailAddress      string `json:"emailAddress" form:"emailAddress"`
	Rating            string `json:"rating" form:"rating"`
	CompanyName       string `json:"companyName" form:"companyName"`
	VATNumber         string `json:"vatNumber" form:"vatNumber"`
	Address           string `json:"address" form:"address"`
	IdentityAccountID string `json:"identityAccountId" form:"identityAccountId"`
	Version           int64  `json:"version" form:"version"`
}

// DeleteViewResponse is the model of the Delete and NoDelete pages.
type DeleteViewResponse struct {
	Customer   CustomerResponse `json:"customer"`
	OrderCount int64            `json:"orderCount"`
}

// List renders the Index page. Rows are fetched through GridData.
func (h *CustomerHandler) List(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	if err := h.customerUC.List(c.Request().Context(), caller); err != nil {
		return err
	}

	return response.View(c, ViewIndex, nil, nil)
}

// Details renders one customer. Customers always see their own record.
func (h *CustomerHandler) Details(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := optionalID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerUC.ViewDetails(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.View(c, ViewDetails, toCustomerResponse(customer), nil)
}

// CreateForm renders an empty create form.
func (h *CustomerHandler) CreateForm(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	form, err := h.customerUC.PrepareCreate(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.View(c, ViewCreate, form, nil)
}

// Create handles the create form post.
func (h *CustomerHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	draft := bindDraft(c)

	outcome, err := h.customerUC.SubmitCreate(c.Request().Context(), caller, draft)
	if err != nil {
		return err
	}

	return h.respondToSubmit(c, ViewCreate, outcome)
}

// EditForm renders the edit form of one customer.
func (h *CustomerHandler) EditForm(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := optionalID(c)
	if err != nil {
		return err
	}

	form, err := h.customerUC.PrepareEdit(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.View(c, ViewEdit, form, nil)
}

// Edit handles the edit form post.
func (h *CustomerHandler) Edit(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := requiredID(c)
	if err != nil {
		return err
	}

	draft := bindDraft(c)

	outcome, err := h.customerUC.SubmitEdit(c.Request().Context(), caller, id, draft)
	if err != nil {
		return err
	}

	return h.respondToSubmit(c, ViewEdit, outcome)
}

// DeleteForm renders the delete confirmation, or NoDelete when orders exist.
func (h *CustomerHandler) DeleteForm(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := optionalID(c)
	if err != nil {
		return err
	}

	view, err := h.customerUC.PrepareDelete(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	model := DeleteViewResponse{
		Customer:   toCustomerResponse(view.Customer),
		OrderCount: view.OrderCount,
	}
	if !view.CanDelete {
		return response.View(c, ViewNoDelete, model, nil)
	}

	return response.View(c, ViewDelete, model, nil)
}

// Delete handles the delete confirmation post.
func (h *CustomerHandler) Delete(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := requiredID(c)
	if err != nil {
		return err
	}

	if err := h.customerUC.ConfirmDelete(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.Redirect(c, PathCustomers)
}

// GridData answers a grid widget. GET reads the compact query-string form; POST
// accepts a JSON body or the same fields form-encoded. Failures other than
// authorization are answered with an empty payload when masking is enabled.
func (h *CustomerHandler) GridData(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	result, err := h.queryGrid(c, caller)
	if err != nil {
		if !h.maskGridErrors || isAuthorizationError(err) {
			return err
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Grid query failed, answering empty payload", slog.Any("error", err))

		return c.JSON(http.StatusOK, "")
	}

	rows := make([]CustomerResponse, len(result.Data))
	for i, customer := range result.Data {
		rows[i] = toCustomerResponse(customer)
	}

	return c.JSON(http.StatusOK, grid.Result[CustomerResponse]{Data: rows, Total: result.Total})
}

func (h *CustomerHandler) queryGrid(c echo.Context, caller entity.Caller) (*grid.Result[*entity.Customer], error) {
	req, err := bindGridRequest(c)
	if err != nil {
		return nil, domainerrors.ErrInvalidGridRequest.WrapMessage(err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrInvalidGridRequest.WrapMessage(err.Error())
	}

	return h.customerUC.QueryGrid(c.Request().Context(), caller, req)
}

func (h *CustomerHandler) respondToSubmit(c echo.Context, view string, outcome *usecase.SubmitOutcome) error {
	switch outcome.Redirect {
	case usecase.RedirectList:
		return response.Redirect(c, PathCustomers)
	case usecase.RedirectDetails:
		return response.Redirect(c, PathCustomerDetails)
	}

	if outcome.Form == nil {
		return errors.New("submit outcome carries neither a redirect nor a form")
	}

	return response.View(c, view, outcome.Form, outcome.Form.Errors)
}

func callerFrom(c echo.Context) (entity.Caller, error) {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrUnauthorized.WrapMessage("caller missing from context")
	}

	return caller, nil
}

// optionalID reads the :id route parameter. An absent parameter yields nil and a
// malformed one answers NotFound, as no record can carry it.
func optionalID(c echo.Context) (*int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("malformed customer id " + strconv.Quote(raw))
	}

	return &id, nil
}

func requiredID(c echo.Context) (int64, error) {
	id, err := optionalID(c)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, domainerrors.ErrCustomerNotFound.WrapMessage("customer id is required")
	}

	return *id, nil
}

// bindDraft never fails: values that cannot be converted are reported on the
// draft's BindErrors so the form is redisplayed with the rest of the input.
func bindDraft(c echo.Context) usecase.CustomerDraft {
	var req CustomerDraftRequest
	bindErrors := make(map[string]string)

	if isJSONRequest(c) {
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			if typeErr, ok := errors.AsType[*json.UnmarshalTypeError](err); ok && typeErr.Field != "" {
				bindErrors[typeErr.Field] = msgInvalidValue
			} else {
				bindErrors[""] = msgUnreadableBody
			}
		}
	} else {
		values, err := c.FormParams()
		if err != nil {
			bindErrors[""] = msgUnreadableBody
		}
		req = draftRequestFromForm(values, bindErrors)
	}

	draft := usecase.CustomerDraft{
		ID:           req.ID,
		Name:         req.Name,
		Info:         req.Info,
		EmailAddress: req.EmailAddress,
		Rating:       entity.Rating(req.Rating),
		CompanyName:  req.CompanyName,
		VATNumber:    req.VATNumber,
		Address:      req.Address,
		Version:      req.Version,
	}
	if link := strings.TrimSpace(req.IdentityAccountID); link != "" {
		draft.IdentityAccountID = &link
	}
	if len(bindErrors) > 0 {
		draft.BindErrors = bindErrors
	}

	return draft
}

const (
	msgInvalidValue   = "has an invalid value"
	msgUnreadableBody = "the submitted form could not be read"
)

func draftRequestFromForm(values url.Values, bindErrors map[string]string) CustomerDraftRequest {
	formInt := func(name string) int64 {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			return 0
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			bindErrors[name] = msgInvalidValue
		}

		return n
	}

	return CustomerDraftRequest{
		ID:                formInt("id"),
		Name:              values.Get("name"),
		Info:              values.Get("info"),
		EmailAddress:      values.Get("emailAddress"),
		Rating:            values.Get("rating"),
		CompanyName:       values.Get("companyName"),
		VATNumber:         values.Get("vatNumber"),
		Address:           values.Get("address"),
		IdentityAccountID: values.Get("identityAccountId"),
		Version:           formInt("version"),
	}
}

func isJSONRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func bindGridRequest(c echo.Context) (grid.Request, error) {
	if c.Request().Method == http.MethodGet {
		return grid.ParseQuery(c.QueryParams())
	}

	if isJSONRequest(c) {
		var req grid.Request
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return grid.Request{}, err
		}

		return req, nil
	}

	values, err := c.FormParams()
	if err != nil {
		return grid.Request{}, err
	}

	return grid.ParseQuery(values)
}

func isAuthorizationError(err error) bool {
	return errors.Is(err, domainerrors.ErrForbidden) || errors.Is(err, domainerrors.ErrUnauthorized)
}

func toCustomerResponse(customer *entity.Customer) CustomerResponse {
	if customer == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		ID:                customer.ID,
		Name:              customer.Name,
		Info:              customer.Info,
		EmailAddress:      customer.EmailAddress,
		Rating:            customer.Rating.String(),
		CompanyName:       customer.CompanyName,
		VATNumber:         customer.VATNumber,
		Address:           customer.Address,
		IdentityAccountID: customer.IdentityAccountID,
		Version:           customer.Version,
		CreatedAt:         customer.CreatedAt,
		UpdatedAt:         customer.UpdatedAt,
	}
}
