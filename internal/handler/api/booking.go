package api

import (
	"net/http"

	reqdto "gigbook/internal/handler/dto/request"
	resdto "gigbook/internal/handler/dto/response"
	"gigbook/internal/handler/httperr"
	"gigbook/internal/usecase/commands"
	"gigbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds      commands.BookingCommands
	q         queries.BookingQueries
	conflicts queries.ConflictQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, conflicts queries.ConflictQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, conflicts: conflicts}
}

// @Summary List bookings
// @Description List bookings annotated with their conflict summary
// @Tags bookings
// @Produce json
// @Param date query string false "Event date (YYYY-MM-DD)"
// @Param needs_action query bool false "Only bookings that still need action"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking with its conflict summary
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Update booking fields. An empty event_time or event_end_time clears it.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.PatchBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req reqdto.PatchBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Booking conflicts
// @Description Conflicts of one booking, ordered by the other booking's id
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {array} resdto.ConflictResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/conflicts [get]
func (h *BookingHandler) Conflicts(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	conflicts, err := h.conflicts.ForBooking(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflicts(conflicts))
}
