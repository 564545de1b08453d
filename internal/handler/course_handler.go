package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/service"
)

// CourseHandler serves the course catalog.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// @Summary Course catalog
// @Description With professionalId, courses are narrowed to the professional's discipline and tagged with board approval.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param professionalId query string false "Professional ID"
// @Success 200 {array} service.CatalogCourse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	courses, err := h.courseService.Catalog(c.Request().Context(), who.ID, c.QueryParam("professionalId"))
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, courses)
}
