package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cylindertrack/internal/service"
)

const employeeNotFound = "Employee not found"

// EmployeeHandler handles employee endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /api/employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body service.CreateEmployeeInput true "Employee name"
// @Success 200 {object} domain.Employee
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input service.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// List handles GET /api/employees
// @Summary List active employees
// @Tags employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.ListActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Delete handles DELETE /api/employees/:id
// @Summary Deactivate an employee
// @Description Soft-deletes the employee. Unknown and already inactive ids both return 404.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, employeeNotFound)
		return
	}

	if err := h.employeeService.Deactivate(c.Request.Context(), id); err != nil {
		handleLookupError(c, err, employeeNotFound)
		return
	}
	RespondMessage(c, "Employee deleted successfully")
}
