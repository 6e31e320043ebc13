package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/content"
	"cryptowise/internal/domain"
	"cryptowise/internal/export"
	"cryptowise/internal/middleware"
)

// Responder writes localized envelopes. The language of a request is the
// signed-in user's preference, else the lang query parameter, else the default.
type Responder struct {
	defaultLanguage string
	log             logrus.FieldLogger
}

// NewResponder creates a new Responder
func NewResponder(defaultLanguage string, log logrus.FieldLogger) *Responder {
	if !domain.IsSupportedLanguage(defaultLanguage) {
		defaultLanguage = domain.DefaultLanguage
	}
	return &Responder{defaultLanguage: defaultLanguage, log: log}
}

// Lang returns the display language of the request
func (r *Responder) Lang(c echo.Context) string {
	return r.LangFor(c, middleware.CurrentUser(c))
}

// LangFor returns the display language for user, who may not be on the
// request context yet (a login in progress) or may be nil.
func (r *Responder) LangFor(c echo.Context, user *domain.User) string {
	var preferred string
	if user != nil {
		preferred = user.Language
	}
	return content.Resolve(r.defaultLanguage, preferred, c.QueryParam("lang"))
}

// Text returns the localized string for key in the request language
func (r *Responder) Text(c echo.Context, key string) string {
	return content.Text(r.Lang(c), key)
}

// classify maps an error to its status and message key
func classify(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, "required_field"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "username_exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "login_required"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "error_amount_less_than_0"
	case errors.Is(err, domain.ErrUnknownAsset):
		return http.StatusBadRequest, "unknown_asset"
	case errors.Is(err, domain.ErrReminderInPast):
		return http.StatusBadRequest, "reminder_in_past"
	case errors.Is(err, export.ErrUnsupportedFormat):
		return http.StatusBadRequest, "unsupported_format"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errInvalidRequest), errors.As(err, &validationErrs):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

var errInvalidRequest = errors.New("invalid request")

// Error writes err as a localized error envelope
func (r *Responder) Error(c echo.Context, err error) error {
	status, key := classify(err)

	var detail interface{}
	var fieldErr *domain.FieldError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErr):
		detail = map[string]string{"field": fieldErr.Field}
	case errors.As(err, &validationErrs):
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Field())
		}
		detail = map[string]interface{}{"fields": fields}
	}

	if status == http.StatusInternalServerError {
		r.log.WithError(err).WithField("path", c.Request().URL.Path).Error("request failed")
	}

	return ErrorResponse(c, status, r.Text(c, key), detail)
}

// HandleHTTPError is the echo error handler. Errors raised by middleware and
// routing end up here and get the same envelope as handler errors.
func (r *Responder) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Internal != nil && errors.Is(he.Internal, domain.ErrUnauthenticated),
			he.Code == http.StatusUnauthorized:
			err = domain.ErrUnauthenticated
		case he.Code == http.StatusNotFound:
			err = domain.ErrNotFound
		case he.Code < http.StatusInternalServerError:
			msg, _ := he.Message.(string)
			if msg == "" {
				msg = http.StatusText(he.Code)
			}
			if writeErr := ErrorResponse(c, he.Code, msg, nil); writeErr != nil {
				r.log.WithError(writeErr).Warn("failed to write error response")
			}
			return
		}
	}

	if writeErr := r.Error(c, err); writeErr != nil {
		r.log.WithError(writeErr).Warn("failed to write error response")
	}
}
