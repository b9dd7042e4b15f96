package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/mykafka"
	"github.com/dkotelnikov/shop-backend/internal/service"
	"github.com/dkotelnikov/shop-backend/internal/tokens"
	"github.com/dkotelnikov/shop-backend/internal/transport"
)

type AuthHTTP struct {
	Svc       *service.AccountService
	JWTSecret []byte
	Producer  *mykafka.Producer
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.AuthResponse{Success: false, Errors: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.AuthResponse{Success: false, Errors: "username, email and password are required"})
	}

	user, err := h.Svc.Signup(ctx, req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrDuplicateEmail) {
		l.Warn("signup_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.AuthResponse{
			Success: false,
			Errors:  "Existing user found with same email address",
		})
	}
	if err != nil {
		l.Error("signup_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.AuthResponse{Success: false, Errors: "internal server error"})
	}

	token, err := tokens.Sign(user.ID, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("signup_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.AuthResponse{Success: false, Errors: "internal server error"})
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{Success: true, Token: token})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.AuthResponse{Success: false, Errors: "invalid request body"})
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrWrongEmail):
		return c.JSON(http.StatusOK, transport.AuthResponse{Success: false, Errors: "Wrong Email Id"})
	case errors.Is(err, service.ErrWrongPassword):
		return c.JSON(http.StatusOK, transport.AuthResponse{Success: false, Errors: "Wrong Password"})
	case err != nil:
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.AuthResponse{Success: false, Errors: "internal server error"})
	}

	token, err := tokens.Sign(user.ID, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.AuthResponse{Success: false, Errors: "internal server error"})
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{Success: true, Token: token})
}
