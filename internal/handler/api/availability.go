package api

import (
	"errors"
	"net/http"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/handler/httperr"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Availability for a date
// @Description Project the weekly schedule onto one calendar date with remaining seats per slot
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetForDate(c *gin.Context) {
	date, ok := h.parseDateQuery(c)
	if !ok {
		return
	}

	items, err := h.availabilityQueries.ResolveForDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "AVAILABILITY_FAILED", "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityList(items))
}

// @Summary Availability for a class on a date
// @Description Remaining seats for one class's slots on a given date
// @Tags availability
// @Produce json
// @Param id path string true "Class ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /classes/{id}/availability [get]
func (h *AvailabilityHandler) GetForClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_CLASS_ID", "Invalid class ID format")
		return
	}

	date, ok := h.parseDateQuery(c)
	if !ok {
		return
	}

	items, err := h.availabilityQueries.ResolveForClass(c.Request.Context(), classID, date)
	if err != nil {
		if errors.Is(err, errs.ErrClassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "CLASS_NOT_FOUND", "Class not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "AVAILABILITY_FAILED", "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityList(items))
}

func (h *AvailabilityHandler) parseDateQuery(c *gin.Context) (booking.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, booking.ErrInvalidDate, "MISSING_DATE", "Query parameter 'date' is required")
		return booking.Date{}, false
	}

	date, err := booking.ParseDate(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		return booking.Date{}, false
	}
	return date, true
}
