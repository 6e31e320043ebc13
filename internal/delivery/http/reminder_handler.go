package http

import (
	"github.com/labstack/echo/v4"

	"cryptowise/internal/delivery/http/dto"
	"cryptowise/internal/domain"
	"cryptowise/internal/middleware"
	"cryptowise/internal/service"
)

// ReminderHandler handles reminder requests
type ReminderHandler struct {
	reminders *service.ReminderService
	respond   *Responder
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminders *service.ReminderService, respond *Responder) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, respond: respond}
}

// Create stores a reminder for the current user
// POST /api/reminders
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.ReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.respond.Error(c, err)
	}

	if req.Time == "" {
		return h.respond.Error(c, domain.MissingField("time"))
	}
	at, err := h.reminders.ParseTime(req.Time)
	if err != nil {
		return h.respond.Error(c, errInvalidRequest)
	}

	reminder, err := h.reminders.SetReminder(c.Request().Context(), middleware.CurrentUser(c), req.Message, at)
	if err != nil {
		return h.respond.Error(c, err)
	}

	return CreatedResponse(c, dto.NewReminderOutputs([]domain.Reminder{*reminder})[0])
}

// List returns the reminders of the current user
// GET /api/reminders
func (h *ReminderHandler) List(c echo.Context) error {
	reminders, err := h.reminders.ListReminders(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return h.respond.Error(c, err)
	}
	return SuccessResponse(c, dto.NewReminderOutputs(reminders))
}
