package context

import (
	"traiteur/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetCaller stores the authenticated caller on the echo context.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(string(callerKey), caller)
}

// GetCaller returns the authenticated caller, if the auth middleware ran.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(string(callerKey)).(entity.Caller)

	return caller, ok
}
