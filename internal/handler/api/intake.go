package api

import (
	"net/http"

	reqdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/request"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/handler/httperr"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	intakeCommands commands.IntakeCommands
}

func NewIntakeHandler(intakeCommands commands.IntakeCommands) *IntakeHandler {
	return &IntakeHandler{
		intakeCommands: intakeCommands,
	}
}

// @Summary Submit contact form
// @Description Submit the public contact form
// @Tags intake
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 201 {object} resdto.IntakeAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Router /contact [post]
func (h *IntakeHandler) SubmitContact(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	id, err := h.intakeCommands.SubmitContact(c.Request.Context(), req.ToSubmission())
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_EMAIL", "Invalid email address")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CONTACT_FAILED", "Failed to submit contact form")
		return
	}

	c.JSON(http.StatusCreated, resdto.IntakeAcceptedResponse{ID: id})
}

// @Summary Subscribe to newsletter
// @Description Subscribe an email address to the newsletter
// @Tags intake
// @Accept json
// @Produce json
// @Param request body reqdto.NewsletterRequest true "Newsletter signup"
// @Success 201 {object} resdto.IntakeAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /newsletter [post]
func (h *IntakeHandler) SubscribeNewsletter(c *gin.Context) {
	var req reqdto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	id, err := h.intakeCommands.SubscribeNewsletter(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_EMAIL", "Invalid email address")
		case errs.Is(err, errs.ErrDuplicateSubscription):
			httperr.AbortWithError(c, http.StatusConflict, err, "ALREADY_SUBSCRIBED", "Email is already subscribed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "NEWSLETTER_FAILED", "Failed to subscribe")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IntakeAcceptedResponse{ID: id})
}
