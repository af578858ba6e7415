// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"traiteur/internal/domain/entity"
	"traiteur/internal/domain/grid"
)

// --- Input DTOs ---

// CustomerDraft carries the editable fields of a customer as submitted by a form.
// ID is zero on creation. Version echoes the concurrency token read by the form.
// BindErrors holds fields whose submitted value could not be converted; a draft
// carrying any is redisplayed.
type CustomerDraft struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name" validate:"required,max=100"`
	Info              string            `json:"info" validate:"max=1000"`
	EmailAddress      string            `json:"emailAddress" validate:"required,email,max=254"`
	Rating            entity.Rating     `json:"rating" validate:"omitempty,oneof=A B C D"`
	CompanyName       string            `json:"companyName" validate:"max=100"`
	VATNumber         string            `json:"vatNumber" validate:"max=30"`
	Address           string            `json:"address" validate:"max=250"`
	IdentityAccountID *string           `json:"identityAccountId"`
	Version           int64             `json:"version"`
	BindErrors        map[string]string `json:"-" validate:"-"`
}

// --- Output DTOs ---

// Redirect names the page a successful submission navigates to.
type Redirect string

const (
	RedirectNone    Redirect = ""
	RedirectList    Redirect = "List"
	RedirectDetails Redirect = "Details"
)

// AccountOption is one selectable identity account on a customer form.
type AccountOption struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

// CustomerForm is the model of a create or edit form.
// Errors maps draft field names to a message and is empty for a fresh form.
type CustomerForm struct {
	Draft    CustomerDraft     `json:"draft"`
	Accounts []AccountOption   `json:"accounts"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// HasErrors reports whether the form is being redisplayed after a failed submission.
func (f *CustomerForm) HasErrors() bool {
	return len(f.Errors) > 0
}

// SubmitOutcome is either a redirect after a successful write or a form to redisplay.
type SubmitOutcome struct {
	Customer *entity.Customer
	Redirect Redirect
	Form     *CustomerForm
}

// DeleteView is the model of the delete confirmation page.
// CanDelete is false when orders still reference the customer.
type DeleteView struct {
	Customer   *entity.Customer `json:"customer"`
	OrderCount int64            `json:"orderCount"`
	CanDelete  bool             `json:"canDelete"`
}

// CustomerUsecase defines the role-gated customer workflow.
// Every operation receives the caller explicitly; optional ids are nil when the
// route carried none.
type CustomerUsecase interface {
	List(ctx context.Context, caller entity.Caller) error
	ViewDetails(ctx context.Context, caller entity.Caller, id *int64) (*entity.Customer, error)
	PrepareCreate(ctx context.Context, caller entity.Caller) (*CustomerForm, error)
	SubmitCreate(ctx context.Context, caller entity.Caller, draft CustomerDraft) (*SubmitOutcome, error)
	PrepareEdit(ctx context.Context, caller entity.Caller, id *int64) (*CustomerForm, error)
	SubmitEdit(ctx context.Context, caller entity.Caller, id int64, draft CustomerDraft) (*SubmitOutcome, error)
	PrepareDelete(ctx context.Context, caller entity.Caller, id *int64) (*DeleteView, error)
	ConfirmDelete(ctx context.Context, caller entity.Caller, id int64) error
	QueryGrid(ctx context.Context, caller entity.Caller, req grid.Request) (*grid.Result[*entity.Customer], error)
}
