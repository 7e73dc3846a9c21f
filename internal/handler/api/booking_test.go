//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/handler/api"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"
	"github.com/manojshendge/gym-class-booking/tests/common/builder"
	"github.com/manojshendge/gym-class-booking/tests/common/httptest"
	"github.com/manojshendge/gym-class-booking/tests/common/testutil"
	commandsmock "github.com/manojshendge/gym-class-booking/tests/mock/commands"
	queriesmock "github.com/manojshendge/gym-class-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) mustDate(raw string) booking.Date {
	d, err := booking.ParseDate(raw)
	s.Require().NoError(err)
	return d
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedParams := commands.ReserveBookingParams{
		ClassID: b.ClassID,
		SlotID:  b.SlotID,
		Date:    s.mustDate(b.Date),
	}

	s.Run("success: returns 201 Created with confirmed booking", func() {
		expectedParams.UserID = s.userID
		s.mockCommands.EXPECT().Reserve(gomock.Any(), expectedParams).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal(b.Date, response.Date)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: class_id", mutate: testutil.Field("class_id", nil)},
			{name: "missing field: slot_id", mutate: testutil.Field("slot_id", nil)},
			{name: "missing field: date", mutate: testutil.Field("date", nil)},
			{name: "malformed class_id", mutate: testutil.Field("class_id", "not-a-uuid")},
			{name: "malformed date", mutate: testutil.Field("date", "2025-6-9")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps reservation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "class not found",
				commandsError:  errs.ErrClassNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Class not found",
			},
			{
				name:           "slot not found",
				commandsError:  errs.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Schedule slot not found",
			},
			{
				name:           "slot belongs to another class",
				commandsError:  errs.ErrSlotClassMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Slot does not belong to the given class",
			},
			{
				name:           "date on wrong weekday",
				commandsError:  errs.ErrDateMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Date does not fall on the slot's weekday",
			},
			{
				name:           "past date",
				commandsError:  errs.ErrPastDate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Cannot book a date in the past",
			},
			{
				name:           "duplicate booking",
				commandsError:  errs.ErrAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Already booked for this slot and date",
			},
			{
				name:           "class full",
				commandsError:  errs.ErrClassFull,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Class is fully booked for this date",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()

	s.Run("success: returns 200 OK with cancelled booking", func() {
		cancelledView := b.BuildView()
		cancelledView.Status = string(booking.StatusCancelled)

		s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID, s.userID).
			Return(cancelledView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: maps cancellation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not booking owner",
				commandsError:  errs.ErrNotBookingOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Booking belongs to another member",
			},
			{
				name:           "already cancelled",
				commandsError:  errs.ErrAlreadyCancelled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking is already cancelled",
			},
			{
				name:           "cutoff passed",
				commandsError:  errs.ErrCancelWindowClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cancellation window has closed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to cancel booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()

	s.Run("success: returns 200 OK with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.userID).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.ClassName, response.ClassName)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.userID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.userID).
			Return(nil, errs.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Booking belongs to another member")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: returns 200 OK with member's bookings", func() {
		first := builder.NewBookingBuilder().BuildView()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ClassName = "HIIT Blast"
			b.Date = "2025-06-16"
		}).BuildView()

		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("HIIT Blast", response[1].ClassName)
	})

	s.Run("success: returns empty array when member has no bookings", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load bookings")
	})
}
