package httperr

import (
	"net/http"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: a vanished booking is marked both not found and concurrently
// modified, and must surface as the latter.
var mappings = []mapping{
	{shared.ErrMutationConflict, http.StatusConflict, "mutation_conflict", "Booking was modified concurrently"},
	{conflict.ErrGroupMismatch, http.StatusConflict, "group_mismatch", "Booking ids do not match a current conflict group"},
	{shared.ErrResolutionStore, http.StatusInternalServerError, "resolution_store_failure", "Resolution store unavailable"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{conflict.ErrHardConflictNotResolvable, http.StatusUnprocessableEntity, "hard_conflict", "Hard conflicts cannot be marked resolved"},
	{conflict.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition", "Invalid conflict workflow transition"},
	{conflict.ErrNotInConflict, http.StatusUnprocessableEntity, "not_in_conflict", "Booking is not part of a conflict group"},
	{conflict.ErrLosersPending, http.StatusUnprocessableEntity, "losers_pending", "Every other booking must be edited or rejected"},
	{booking.ErrMalformedTime, http.StatusBadRequest, "validation_failed", "Malformed time of day"},
	{booking.ErrMalformedDate, http.StatusBadRequest, "validation_failed", "Malformed date"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "validation_failed", "Validation failed"},
}

// Abort maps a use case error onto its HTTP status and aborts the request.
func Abort(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, code, msg, detail)
}

func Classify(err error) (status int, code, message string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code, m.message
		}
	}
	return http.StatusInternalServerError, "internal_error", "Internal server error"
}
