package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cryptowise/internal/content"
	"cryptowise/internal/delivery/http/dto"
	"cryptowise/internal/middleware"
	"cryptowise/internal/service"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	accounts     *service.AccountService
	sessions     *service.SessionService
	respond      *Responder
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts *service.AccountService, sessions *service.SessionService, respond *Responder, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		accounts:     accounts,
		sessions:     sessions,
		respond:      respond,
		secureCookie: secureCookie,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.respond.Error(c, err)
	}

	language := req.Language
	if language == "" {
		language = h.respond.Lang(c)
	}

	user, err := h.accounts.Register(c.Request().Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Language: language,
	})
	if err != nil {
		return h.respond.Error(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Status:  "success",
		Message: h.respond.Text(c, "register_success"),
		Data:    dto.NewUserOutput(user),
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.respond.Error(c, err)
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.respond.Error(c, err)
	}

	// Set HTTP-only cookie for browser clients
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Expires:  result.Session.ExpiresAt,
		MaxAge:   int(result.Session.ExpiresAt.Sub(result.Session.IssuedAt).Seconds()),
	})

	welcome := fmt.Sprintf(content.Text(h.respond.LangFor(c, result.User), "welcome_back"), result.User.Username)
	return SuccessMessageResponse(c, welcome, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		User:      dto.NewUserOutput(result.User),
	})
}

// Logout revokes the presented session and clears the cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.CurrentToken(c)
	if token == "" {
		token = middleware.TokenFromRequest(c)
	}
	if token != "" {
		if err := h.sessions.Logout(c.Request().Context(), token); err != nil {
			return h.respond.Error(c, err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1, // Delete cookie
	})

	return SuccessMessageResponse(c, h.respond.Text(c, "logout_message"), nil)
}
