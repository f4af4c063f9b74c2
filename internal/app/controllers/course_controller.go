package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/services"
	"github.com/skillsphere/skillsphere/internal/middleware"
)

// certificateFormField is the multipart field carrying the certificate upload
const certificateFormField = "certificate"

// CourseController handles course CRUD and certificate uploads
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

func parseCourseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// ListCourses returns the caller's courses with certificates
// @Summary List courses
// @Description Returns all of the caller's courses, newest first, with certificates attached
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse returns one owned course
// @Summary Get course details
// @Description Returns one of the caller's courses with its certificates
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} models.Course "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, middleware.CurrentUserID(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourse creates a course, optionally with a certificate upload
// @Summary Create a course
// @Description Creates a course from multipart form fields; an optional certificate file is attached in the same operation
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Course title"
// @Param platform formData string true "Learning platform"
// @Param category formData string true "Category"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param endDate formData string true "End date (YYYY-MM-DD)"
// @Param status formData string false "Course status"
// @Param progress formData int false "Progress percentage"
// @Param hoursLearned formData number false "Hours learned"
// @Param certificate formData file false "Certificate file"
// @Success 201 {object} models.Course "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	}

	// The certificate file is optional; only a malformed part is an error
	certificateFile, err := ctx.FormFile(certificateFormField)
	if err != nil && err != http.ErrMissingFile {
		certificateFile = nil
	}

	course, err := c.courseService.CreateCourse(ctx, middleware.CurrentUserID(ctx), &req, certificateFile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse applies a partial update, optionally appending a certificate
// @Summary Update a course
// @Description Applies the provided multipart form fields; absent fields are left untouched. An uploaded certificate is appended.
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param title formData string false "Course title"
// @Param platform formData string false "Learning platform"
// @Param category formData string false "Category"
// @Param startDate formData string false "Start date (YYYY-MM-DD)"
// @Param endDate formData string false "End date (YYYY-MM-DD)"
// @Param status formData string false "Course status"
// @Param progress formData int false "Progress percentage"
// @Param hoursLearned formData number false "Hours learned"
// @Param certificate formData file false "Certificate file"
// @Success 200 {object} models.Course "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	}

	certificateFile, err := ctx.FormFile(certificateFormField)
	if err != nil && err != http.ErrMissingFile {
		certificateFile = nil
	}

	course, err := c.courseService.UpdateCourse(ctx, middleware.CurrentUserID(ctx), courseID, &req, certificateFile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes an owned course
// @Summary Delete a course
// @Description Removes one of the caller's courses; its certificates are removed with it
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, middleware.CurrentUserID(ctx), courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}

// MarkCompleted marks an owned course as completed
// @Summary Mark a course completed
// @Description Sets the course status to COMPLETED with progress 100; repeating the call is harmless
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} models.Course "Course marked completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/complete [patch]
func (c *CourseController) MarkCompleted(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.MarkCompleted(ctx, middleware.CurrentUserID(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}
