package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cylindertrack/internal/service"
)

const deliveryNotFound = "Delivery not found"

// DeliveryHandler handles delivery record endpoints.
type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	RegisterValidators()
	return &DeliveryHandler{deliveryService: deliveryService}
}

// Create handles POST /api/deliveries
// @Summary Record a delivery
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body service.DeliveryInput true "Delivery details"
// @Success 200 {object} domain.Delivery
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /deliveries [post]
func (h *DeliveryHandler) Create(c *gin.Context) {
	var input service.DeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	delivery, err := h.deliveryService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// ListByDate handles GET /api/deliveries/date/:date
// @Summary List deliveries for a date
// @Tags deliveries
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} domain.Delivery
// @Router /deliveries/date/{date} [get]
func (h *DeliveryHandler) ListByDate(c *gin.Context) {
	deliveries, err := h.deliveryService.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

// Replace handles PUT /api/deliveries/:id
// @Summary Replace a delivery
// @Description Overwrites every field except id and created_at
// @Tags deliveries
// @Accept json
// @Produce json
// @Param id path string true "Delivery ID"
// @Param request body service.DeliveryInput true "Delivery details"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Delivery not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /deliveries/{id} [put]
func (h *DeliveryHandler) Replace(c *gin.Context) {
	var input service.DeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, deliveryNotFound)
		return
	}

	if err := h.deliveryService.Replace(c.Request.Context(), id, input); err != nil {
		handleLookupError(c, err, deliveryNotFound)
		return
	}
	RespondMessage(c, "Delivery updated successfully")
}

// Summary handles GET /api/deliveries/summary/:date
// @Summary Daily totals
// @Description Six running sums over the date's deliveries; all zero when there are none
// @Tags deliveries
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.DailySummary
// @Router /deliveries/summary/{date} [get]
func (h *DeliveryHandler) Summary(c *gin.Context) {
	summary, err := h.deliveryService.DailySummary(c.Request.Context(), c.Param("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
