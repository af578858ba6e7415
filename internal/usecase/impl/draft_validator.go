package impl

import (
	"fmt"
	"reflect"
	"strings"

	"traiteur/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const fieldIdentityAccountID = "identityAccountId"

const (
	msgIdentityAlreadyLinked = "is already linked to another customer"
	msgUnknownAccount        = "does not reference an existing account"
	msgNotCustomerAccount    = "must reference an account in the Customer role"
	msgRejectedByStore       = "the customer could not be saved with these values"
)

// draftValidator turns struct tag violations on a CustomerDraft into form messages
// keyed by the draft's JSON field names.
type draftValidator struct {
	engine *validator.Validate
}

func newDraftValidator() *draftValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &draftValidator{engine: v}
}

// validate always returns a non-nil map so callers can add collaborator checks.
func (v *draftValidator) validate(draft usecase.CustomerDraft) map[string]string {
	fieldErrors := make(map[string]string)

	err := v.engine.Struct(draft)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors[""] = err.Error()

		return fieldErrors
	}

	for _, fe := range validationErrors {
		if _, exists := fieldErrors[fe.Field()]; exists {
			continue
		}
		fieldErrors[fe.Field()] = fieldMessage(fe)
	}

	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return "is invalid"
	}
}
