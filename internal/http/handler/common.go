package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/logger"
	"github.com/profilkantor/profile-api/internal/service"
	"go.uber.org/zap"
)

const maxJSONBodyBytes = 1 << 20

var validate = newValidator()

// newValidator reports fields by their json or form name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Responder writes the response envelope. Error details are attached only
// when debug is set, which is every environment except production.
type Responder struct {
	logger *zap.Logger
	debug  bool
}

// NewResponder creates a responder
func NewResponder(logger *zap.Logger, debug bool) *Responder {
	return &Responder{logger: logger, debug: debug}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Success writes {status:"success", data, message}
func (rs *Responder) Success(w http.ResponseWriter, status int, data any, message string) {
	respondJSON(w, status, domain.Response{
		Status:  domain.StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// Fail writes an error envelope with a client message
func (rs *Responder) Fail(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.Response{
		Status:  domain.StatusError,
		Message: message,
	})
}

// FailWithError writes an error envelope and, outside production, err's text
func (rs *Responder) FailWithError(w http.ResponseWriter, status int, message string, err error) {
	resp := domain.Response{
		Status:  domain.StatusError,
		Message: message,
	}
	if rs.debug && err != nil {
		resp.Error = err.Error()
	}
	respondJSON(w, status, resp)
}

// ValidationFailed writes a 400 with per-field messages under data.errors
func (rs *Responder) ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, domain.Response{
		Status:  domain.StatusError,
		Message: "Validation failed",
		Data:    domain.ValidationErrors{Errors: fields},
	})
}

// Error maps a service error to its status code. Unexpected errors are
// logged and answered with fallback.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusOf(err)
	if status != http.StatusInternalServerError {
		rs.FailWithError(w, status, service.MessageOf(err), err)
		return
	}

	logger.ForRequest(rs.logger, r).Error(fallback, zap.Error(err))

	rs.FailWithError(w, http.StatusInternalServerError, fallback, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseID reads the {id} path parameter. Only the canonical 36 character
// UUID form is accepted.
func (rs *Responder) parseID(w http.ResponseWriter, r *http.Request, entity string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if len(raw) != 36 || err != nil {
		rs.Fail(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID format", entity))
		return uuid.Nil, false
	}
	return id, true
}

// decodeJSON decodes a JSON body into dst, rejecting unknown fields, then
// validates it. It writes the 400 response itself and reports success.
func (rs *Responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			rs.ValidationFailed(w, map[string]string{
				strings.Trim(field, `"`): domain.GetValidationMessage("unknown"),
			})
			return false
		}
		if errors.Is(err, io.EOF) {
			rs.Fail(w, http.StatusBadRequest, "Request body is required")
			return false
		}
		rs.FailWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}

	return rs.validateRequest(w, dst)
}

// validateRequest runs struct validation and writes field errors
func (rs *Responder) validateRequest(w http.ResponseWriter, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			rs.FailWithError(w, http.StatusBadRequest, "Invalid request", err)
			return false
		}
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = formatValidationError(fe)
		}
		rs.ValidationFailed(w, fields)
		return false
	}
	return true
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// activeFilter reads ?show_all=true; anything else lists active rows only
func activeFilter(r *http.Request) domain.ActiveFilter {
	if strings.EqualFold(r.URL.Query().Get("show_all"), "true") {
		return domain.AllRecords
	}
	return domain.OnlyActive
}

// actorID returns the authenticated user. Routes using it sit behind auth.
func actorID(r *http.Request) uuid.UUID {
	return auth.UserIDFromContext(r.Context())
}
