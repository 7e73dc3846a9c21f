package api

import (
	"errors"
	"net/http"

	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/handler/httperr"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List classes
// @Description List all gym classes with their weekly schedule slots
// @Tags classes
// @Produce json
// @Success 200 {array} resdto.ClassResponse
// @Router /classes [get]
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	views, err := h.catalogQueries.ListClasses(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CATALOG_LIST_FAILED", "Failed to load classes")
		return
	}

	resp, err := resdto.FromClassList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CATALOG_LIST_FAILED", "Failed to load classes")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get class
// @Description Get one gym class by ID
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /classes/{id} [get]
func (h *CatalogHandler) GetClass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_CLASS_ID", "Invalid class ID format")
		return
	}

	view, err := h.catalogQueries.GetClass(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrClassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "CLASS_NOT_FOUND", "Class not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CATALOG_READ_FAILED", "Failed to load class")
		return
	}

	resp, err := resdto.FromClassView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CATALOG_READ_FAILED", "Failed to load class")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List class slots
// @Description List the weekly schedule slots of one class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /classes/{id}/slots [get]
func (h *CatalogHandler) ListClassSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_CLASS_ID", "Invalid class ID format")
		return
	}

	view, err := h.catalogQueries.GetClass(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrClassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "CLASS_NOT_FOUND", "Class not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "CATALOG_READ_FAILED", "Failed to load class slots")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotList(view.Slots))
}
