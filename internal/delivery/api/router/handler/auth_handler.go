package handler

import (
	"log/slog"
	"net/http"
	"time"

	"traiteur/internal/delivery/api/response"
	"traiteur/internal/delivery/api/validator"
	"traiteur/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the login endpoint and the caller introspection endpoint.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	AccountID   string    `json:"accountId"`
	UserName    string    `json:"userName"`
	Roles       []string  `json:"roles"`
}

// Login exchanges a user name and password for a bearer access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	output, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		AccountID:   output.Account.ID,
		UserName:    output.Account.UserName,
		Roles:       output.Account.Roles.ToStrings(),
	})
}

// Me echoes the authenticated caller and the role that governs its requests.
func (h *AuthHandler) Me(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"identityId": caller.IdentityID,
		"role":       caller.Role.String(),
	})
}
