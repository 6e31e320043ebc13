package http

import (
	"github.com/labstack/echo/v4"

	"cryptowise/internal/content"
	"cryptowise/internal/delivery/http/dto"
	"cryptowise/internal/domain"
	"cryptowise/internal/middleware"
	"cryptowise/internal/service"
)

// UserHandler handles user-related requests
type UserHandler struct {
	accounts *service.AccountService
	respond  *Responder
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(accounts *service.AccountService, respond *Responder) *UserHandler {
	return &UserHandler{accounts: accounts, respond: respond}
}

// GetMe returns current user details
// GET /api/user/me
func (h *UserHandler) GetMe(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return h.respond.Error(c, domain.ErrUnauthenticated)
	}
	return SuccessResponse(c, dto.NewMeOutput(user, middleware.CurrentSession(c)))
}

// SetLanguage changes the display language of the current user
// PUT /api/user/settings/language
func (h *UserHandler) SetLanguage(c echo.Context) error {
	var req dto.SetLanguageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.respond.Error(c, err)
	}

	updated, err := h.accounts.SetPreferredLanguage(c.Request().Context(), middleware.CurrentUser(c), req.Language)
	if err != nil {
		return h.respond.Error(c, err)
	}

	return SuccessMessageResponse(c, content.Text(updated.Language, "settings_title"), dto.NewUserOutput(updated))
}
