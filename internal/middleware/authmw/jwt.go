package authmw

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/tokens"
)

// RequireToken validates the legacy auth-token header and puts the caller's
// id and role into the request context.
func RequireToken(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningMethod: "HS256",
		SigningKey:    secret,
		TokenLookup:   "header:auth-token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &tokens.SessionClaims{}
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*tokens.SessionClaims)
			if !ok {
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				return
			}
			c.Set("userID", userID)
			c.Set("role", claims.Role)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"errors": "Please authenticate using a valid token",
			})
		},
	})
}

// UserID reads the id RequireToken stored. The second return is false when
// the middleware did not run or rejected the token.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("userID").(uint)
	return id, ok
}
