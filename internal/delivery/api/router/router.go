// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"traiteur/config"
	"traiteur/internal/delivery/api/middleware"
	"traiteur/internal/delivery/api/response"
	"traiteur/internal/delivery/api/router/handler"
	"traiteur/internal/domain/entity"
	"traiteur/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	csrfCookieName = "_csrf"
	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "_csrf"
	gridDataPath   = "/grid-data"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		authHandler:     params.AuthHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Per-operation role checks live in the customer usecase. The group only
	// admits callers holding one of the two controller roles.
	customers := e.Group("/customers",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdministrator, entity.RoleCustomer),
	)
	if r.csrfEnabled() {
		customers.Use(r.csrf())
	}
	{
		h := r.customerHandler

		customers.GET("", h.List)

		customers.GET("/details", h.Details)
		customers.GET("/details/:id", h.Details)

		customers.GET("/create", h.CreateForm)
		customers.POST("/create", h.Create)

		customers.GET("/edit", h.EditForm)
		customers.GET("/edit/:id", h.EditForm)
		customers.POST("/edit/:id", h.Edit)

		customers.GET("/delete", h.DeleteForm)
		customers.GET("/delete/:id", h.DeleteForm)
		customers.POST("/delete/:id", h.Delete)

		customers.GET(gridDataPath, h.GridData)
		customers.POST(gridDataPath, h.GridData)
	}
}

func (r *router) csrfEnabled() bool {
	return r.config.CSRF != nil && r.config.CSRF.Enabled
}

// csrf guards the form posts. The grid endpoint is read-only and skipped.
func (r *router) csrf() echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/customers"+gridDataPath
		},
		TokenLookup:    "header:" + csrfHeaderName + ",form:" + csrfFormField,
		ContextKey:     response.CSRFContextKey,
		CookieName:     csrfCookieName,
		CookiePath:     "/customers",
		CookieDomain:   r.config.CSRF.CookieDomain,
		CookieSecure:   r.config.CSRF.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}
