package api

import (
	"errors"
	"net/http"

	reqdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/request"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/handler/httperr"
	"github.com/manojshendge/gym-class-booking/internal/handler/middleware"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Reserve a class seat
// @Description Reserve a seat in a schedule slot on a concrete date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		return
	}

	view, err := h.bookingCommands.Reserve(c.Request.Context(), commands.ReserveBookingParams{
		UserID:  userID,
		ClassID: req.ClassID,
		SlotID:  req.SlotID,
		Date:    date,
	})
	if err != nil {
		h.abortReserveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) abortReserveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrClassNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "CLASS_NOT_FOUND", "Class not found")
	case errors.Is(err, errs.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "SLOT_NOT_FOUND", "Schedule slot not found")
	case errors.Is(err, errs.ErrSlotClassMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "SLOT_CLASS_MISMATCH", "Slot does not belong to the given class")
	case errors.Is(err, errs.ErrDateMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "DATE_MISMATCH", "Date does not fall on the slot's weekday")
	case errors.Is(err, errs.ErrPastDate):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "PAST_DATE", "Cannot book a date in the past")
	case errors.Is(err, errs.ErrAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "ALREADY_BOOKED", "Already booked for this slot and date")
	case errors.Is(err, errs.ErrClassFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "CLASS_FULL", "Class is fully booked for this date")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "BOOKING_FAILED", "Failed to create booking")
	}
}

// @Summary Cancel booking
// @Description Cancel an owned booking before the cutoff window closes
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "UNAUTHORIZED", "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_BOOKING_ID", "Invalid booking ID format")
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "NOT_BOOKING_OWNER", "Booking belongs to another member")
		case errors.Is(err, errs.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "ALREADY_CANCELLED", "Booking is already cancelled")
		case errors.Is(err, errs.ErrCancelWindowClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "CANCEL_WINDOW_CLOSED", "Cancellation window has closed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "CANCEL_FAILED", "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get one owned booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "UNAUTHORIZED", "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_BOOKING_ID", "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "NOT_BOOKING_OWNER", "Booking belongs to another member")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "BOOKING_READ_FAILED", "Failed to load booking")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List the authenticated member's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "UNAUTHORIZED", "User not authenticated")
		return
	}

	views, err := h.bookingQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "BOOKING_LIST_FAILED", "Failed to load bookings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}
