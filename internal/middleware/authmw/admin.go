package authmw

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly guards catalog writes. The legacy API let anyone add or remove
// products; mutations of shared inventory now need an admin token.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("role").(string)
		if role != "admin" {
			return c.JSON(http.StatusForbidden, echo.Map{
				"errors": "admin token required",
			})
		}
		return next(c)
	}
}
