package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cylindertrack/internal/service"
)

// SettingsHandler handles the pricing settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsResponse confirms a price change.
type UpdateSettingsResponse struct {
	Message       string  `json:"message"`
	CylinderPrice float64 `json:"cylinder_price"`
}

// Get handles GET /api/settings
// @Summary Get settings
// @Description Returns the pricing settings, creating the defaults on first read
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/settings
// @Summary Update cylinder price
// @Description Sets the current price and appends it to the price history
// @Tags settings
// @Accept json
// @Produce json
// @Param request body service.UpdateSettingsInput true "New price"
// @Success 200 {object} UpdateSettingsResponse
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var input service.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	settings, err := h.settingsService.UpdatePrice(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateSettingsResponse{
		Message:       "Settings updated successfully",
		CylinderPrice: settings.CylinderPrice,
	})
}
