package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orbita/challenger-backend/internal/model"
	"github.com/orbita/challenger-backend/internal/response"
	"github.com/orbita/challenger-backend/internal/service"
	"github.com/orbita/challenger-backend/internal/validator"
)

// StudentHandler maps the student HTTP surface onto StudentService.
//
// The status-code mapping is uneven on purpose: add and edit answer
// 200 even on business-rule rejection while delete answers 400, and
// the read endpoints disagree on empty results (204 vs 404). Clients
// depend on this behavior, so it is kept as-is; the envelope's
// success flag is the reliable signal.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GetAll godoc
// GET /getAll
// Lists every student. Empty storage or a storage failure yields 204.
func (h *StudentHandler) GetAll(c *gin.Context) {
	env := h.studentService.ListAll(c.Request.Context())

	students, _ := env.Data.([]model.Student)
	if !env.Success || len(students) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.JSON(c, http.StatusOK, env)
}

// GetByName godoc
// GET /getByName?name=
// Case-insensitive substring match on name. Zero matches yield 404.
func (h *StudentHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		response.Error(c, http.StatusBadRequest, "Name cannot be empty.")
		return
	}

	env := h.studentService.FindByName(c.Request.Context(), name)
	if !env.Success {
		response.JSON(c, http.StatusNotFound, env)
		return
	}
	response.JSON(c, http.StatusOK, env)
}

// GetByRA godoc
// GET /getByRA/:ra
// Exact match on registration code. The envelope is successful even
// when no student matches; 404 only signals a storage failure.
func (h *StudentHandler) GetByRA(c *gin.Context) {
	ra := c.Param("ra")
	if strings.TrimSpace(ra) == "" {
		response.Error(c, http.StatusBadRequest, "RA cannot be empty.")
		return
	}

	env := h.studentService.GetByRA(c.Request.Context(), ra)
	if !env.Success {
		response.JSON(c, http.StatusNotFound, env)
		return
	}
	response.JSON(c, http.StatusOK, env)
}

// Search godoc
// GET /search?searchTerm=
// Substring match on name, RA, or CPF. Zero matches yield 404.
func (h *StudentHandler) Search(c *gin.Context) {
	term := c.Query("searchTerm")
	if strings.TrimSpace(term) == "" {
		response.Error(c, http.StatusBadRequest, "Search term cannot be empty.")
		return
	}

	env := h.studentService.Search(c.Request.Context(), term)
	if !env.Success {
		response.JSON(c, http.StatusNotFound, env)
		return
	}
	response.JSON(c, http.StatusOK, env)
}

// Add godoc
// POST /add
// Creates a student. Business-rule rejections (duplicate RA, invalid
// or duplicate CPF) still answer 200 with a failed envelope; only a
// malformed body answers 400.
func (h *StudentHandler) Add(c *gin.Context) {
	var req model.StudentRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	env := h.studentService.Add(c.Request.Context(), req)
	response.JSON(c, http.StatusOK, env)
}

// Edit godoc
// POST /edit
// Overwrites name, email, and CPF of an existing student. Same 200
// convention as Add.
func (h *StudentHandler) Edit(c *gin.Context) {
	var req model.StudentRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	env := h.studentService.Edit(c.Request.Context(), req)
	response.JSON(c, http.StatusOK, env)
}

// Delete godoc
// POST /delete/:ra
// Removes a student. Unlike Add and Edit, a failed envelope answers 400.
func (h *StudentHandler) Delete(c *gin.Context) {
	ra := c.Param("ra")
	if strings.TrimSpace(ra) == "" {
		response.Error(c, http.StatusBadRequest, "RA cannot be empty.")
		return
	}

	env := h.studentService.Delete(c.Request.Context(), ra)
	if !env.Success {
		response.JSON(c, http.StatusBadRequest, env)
		return
	}
	response.JSON(c, http.StatusOK, env)
}
