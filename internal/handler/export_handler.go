package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cylindertrack/internal/service"
)

// ExportHandler handles daily export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Download handles GET /api/deliveries/export/:date
// @Summary Download a daily export
// @Tags exports
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "No deliveries for the date"
// @Failure 422 {object} ErrorResponse "Unsupported format"
// @Router /deliveries/export/{date} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), c.Param("date"), format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Share handles POST /api/deliveries/export/:date/share
// @Summary Share a daily export
// @Description Uploads the export to object storage and returns a presigned download URL
// @Tags exports
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {object} service.SharedExport
// @Failure 404 {object} ErrorResponse "No deliveries for the date"
// @Failure 503 {object} ErrorResponse "Sharing not configured"
// @Router /deliveries/export/{date}/share [post]
func (h *ExportHandler) Share(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	shared, err := h.exportService.Share(c.Request.Context(), c.Param("date"), format)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shared)
}
