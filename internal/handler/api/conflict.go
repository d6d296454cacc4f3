package api

import (
	"net/http"
	"strings"

	"gigbook/internal/domain/booking"
	reqdto "gigbook/internal/handler/dto/request"
	resdto "gigbook/internal/handler/dto/response"
	"gigbook/internal/handler/httperr"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/commands"
	"gigbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConflictHandler struct {
	workflow commands.ConflictWorkflow
	q        queries.ConflictQueries
}

func NewConflictHandler(workflow commands.ConflictWorkflow, q queries.ConflictQueries) *ConflictHandler {
	return &ConflictHandler{workflow: workflow, q: q}
}

// @Summary Conflict map
// @Description Conflicts of every booking keyed by booking id. Bookings without conflicts are absent.
// @Tags conflicts
// @Produce json
// @Success 200 {object} resdto.ConflictMapResponse
// @Failure 500 {object} httperr.Response
// @Router /conflicts [get]
func (h *ConflictHandler) DetectAll(c *gin.Context) {
	m, err := h.q.DetectAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictMap(m))
}

// @Summary Conflict groups
// @Tags conflicts
// @Produce json
// @Param date query string false "Only this date (YYYY-MM-DD)"
// @Success 200 {array} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Router /conflicts/groups [get]
func (h *ConflictHandler) Groups(c *gin.Context) {
	var query reqdto.GroupsQuery
	_ = c.ShouldBindQuery(&query)

	var date *booking.Date
	if strings.TrimSpace(query.Date) != "" {
		d, err := booking.ParseDate(query.Date)
		if err != nil {
			httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation))
			return
		}
		date = &d
	}

	groups, err := h.q.Groups(c.Request.Context(), date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroups(groups))
}

// @Summary List resolutions
// @Tags conflicts
// @Produce json
// @Success 200 {array} resdto.ResolutionResponse
// @Failure 500 {object} httperr.Response
// @Router /conflicts/resolutions [get]
func (h *ConflictHandler) Resolutions(c *gin.Context) {
	rs, err := h.q.Resolutions(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolutions(rs))
}

// @Summary Mark resolved
// @Description Accept a soft conflict group. The ids must equal a current group exactly.
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.MarkResolvedRequest true "Group to accept"
// @Success 201 {object} resdto.WorkflowResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /conflicts/resolutions [post]
func (h *ConflictHandler) MarkResolved(c *gin.Context) {
	var req reqdto.MarkResolvedRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.workflow.MarkResolved(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if res.Resolution == nil {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromWorkflowResult(res))
}

// @Summary Edit times
// @Description Change the times of a booking in a conflict group
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.EditTimesRequest true "New times"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /conflicts/edit-times [post]
func (h *ConflictHandler) EditTimes(c *gin.Context) {
	var req reqdto.EditTimesRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, func() (*commands.WorkflowResult, error) {
		return h.workflow.EditTimes(c.Request.Context(), req.ToCommand())
	})
}

// @Summary Reject booking
// @Description Reject a booking in a conflict group. The booking is deleted.
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.RejectRequest true "Booking to reject"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /conflicts/reject [post]
func (h *ConflictHandler) Reject(c *gin.Context) {
	var req reqdto.RejectRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, func() (*commands.WorkflowResult, error) {
		return h.workflow.Reject(c.Request.Context(), req.BookingID)
	})
}

// @Summary Keep one
// @Description Keep one booking of a group and edit or reject every other member in one step
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.KeepOneRequest true "Kept booking and loser dispositions"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /conflicts/keep-one [post]
func (h *ConflictHandler) KeepOne(c *gin.Context) {
	var req reqdto.KeepOneRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, func() (*commands.WorkflowResult, error) {
		return h.workflow.KeepOne(c.Request.Context(), req.ToCommand())
	})
}

func (h *ConflictHandler) respond(c *gin.Context, run func() (*commands.WorkflowResult, error)) {
	res, err := run()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkflowResult(res))
}
