//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/handler/api"
	resdto "gigbook/internal/handler/dto/response"
	"gigbook/internal/handler/middleware"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/commands"
	"gigbook/internal/usecase/queries"
	"gigbook/tests/common/builder"
	"gigbook/tests/common/httptest"
	"gigbook/tests/common/testutil"
	commandsmock "gigbook/tests/mock/commands"
	queriesmock "gigbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockQueries   *queriesmock.MockBookingQueries
	mockConflicts *queriesmock.MockConflictQueries
	handler       *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockConflicts = queriesmock.NewMockConflictQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockConflicts)

	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PATCH("/bookings/:id", s.handler.Update)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.GET("/bookings/:id/conflicts", s.handler.Conflicts)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithID(1).BuildView(),
		builder.NewBookingBuilder().WithID(2).At("", "").BuildView(),
	}
	views[0].ConflictCount = 1
	views[0].ConflictSeverity = "hard"

	s.Run("success: returns annotated bookings", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{}).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, nil)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("confirmed", body[0].Status)
		s.Equal(1, body[0].ConflictCount)
		s.Equal("hard", body[0].ConflictSeverity)
		s.Equal("19:00 - 22:00", body[0].TimeLabel)
		s.Equal("Time not set", body[1].TimeLabel)
		s.Nil(body[1].EventTime)
	})

	s.Run("success: passes date and needs_action filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.BookingFilter) ([]*queries.BookingView, error) {
				s.Require().NotNil(f.Date)
				s.Equal("2025-06-01", f.Date.String())
				s.Require().NotNil(f.NeedsAction)
				s.True(*f.NeedsAction)
				return views[:1], nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2025-06-01&needs_action=true", nil, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=June", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_failed")
	})

	s.Run("error: 500 on resolution store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), commands.ErrResolutionStore)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "resolution_store_failure")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithID(7).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal(view.ClientName, body.ClientName)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/8", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})

	for _, id := range []string{"abc", "0", "-3"} {
		s.Run("error: 400 on id "+id, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id, nil, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_id")
		})
	}
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	url := "/bookings/1"
	reqBody := builder.NewBookingBuilder().BuildPatchRequestDTO()
	view := builder.NewBookingBuilder().BuildView()
	updated := builder.NewBookingBuilder().BuildDomain()

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "only venue", mutate: func(m map[string]any) { clear(m); m["venue"] = "Arms" }, expectCode: http.StatusOK},
		{name: "clear end time", mutate: testutil.Field("event_end_time", ""), expectCode: http.StatusOK},
		{name: "client name at limit", mutate: testutil.Field("client_name", strings.Repeat("a", 200)), expectCode: http.StatusOK},
		{name: "client name too long", mutate: testutil.Field("client_name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "time of wrong type", mutate: testutil.Field("event_time", 1900), expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusOK {
				s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(&updated, nil).Times(1)
				s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), nil)
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("success: patch carries status and nil for absent fields", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, p booking.Patch) (*booking.Booking, error) {
				s.Require().NotNil(p.Status)
				s.Equal(booking.StatusCancelled, *p.Status)
				s.Nil(p.EventTime)
				return &updated, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", commands.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
		{"malformed time", errs.Mark(booking.ErrMalformedTime, errs.ErrDomainValidation), http.StatusBadRequest, "validation_failed"},
		{"invalid status", errs.Mark(booking.ErrInvalidStatus, errs.ErrDomainValidation), http.StatusBadRequest, "validation_failed"},
		{"concurrent delete", errs.Mark(commands.ErrBookingNotFound, commands.ErrMutationConflict), http.StatusConflict, "mutation_conflict"},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, nil)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.code)
		})
	}
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/3", nil, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(3)).Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/3", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})
}

// ================================================================================
// TestConflicts
// ================================================================================

func (s *BookingHandlerTestSuite) TestConflicts() {
	overlap := 60
	conflicts := []conflict.Conflict{{
		BookingID:      1,
		WithBookingID:  2,
		Date:           "2025-06-01",
		Severity:       conflict.SeverityHard,
		Reason:         conflict.ReasonTimeOverlap,
		OverlapMinutes: &overlap,
		Message:        "Overlaps by 60 minutes with Jones Wedding",
		Time:           "20:00 - 23:00",
		ClientName:     "Jones Wedding",
		Status:         booking.StatusConfirmed,
	}}

	s.Run("success", func() {
		s.mockConflicts.EXPECT().ForBooking(gomock.Any(), int64(1)).Return(conflicts, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1/conflicts", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(float64(2), body[0]["with_booking_id"])
		s.Equal("hard", body[0]["severity"])
		s.Equal("time_overlap", body[0]["reason"])
		s.Equal(float64(60), body[0]["overlap_minutes"])
	})

	s.Run("success: empty list is an array", func() {
		s.mockConflicts.EXPECT().ForBooking(gomock.Any(), int64(5)).Return([]conflict.Conflict{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/5/conflicts", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 404", func() {
		s.mockConflicts.EXPECT().ForBooking(gomock.Any(), int64(9)).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/9/conflicts", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})
}
