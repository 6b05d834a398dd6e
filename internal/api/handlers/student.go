package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus_api/internal/service"
)

// StudentHandler 處理與學生和指導關係相關的請求
type StudentHandler struct {
	studentService *service.StudentService
	logger         *zap.Logger
}

// NewStudentHandler 創建一個新的 StudentHandler 實例
func NewStudentHandler(studentService *service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{studentService: studentService, logger: logger}
}

// ListStudents 列出所有學生
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// ListEnrichedStudents 列出所有學生及其指導教授
func (h *StudentHandler) ListEnrichedStudents(c *gin.Context) {
	students, err := h.studentService.ListEnrichedStudents(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// CreateStudent 建立學生
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var input service.CreateStudentInput
	if !bindCreateInput(c, h.logger, &input) {
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent 部分更新學生
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("studentId"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent 刪除學生
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("studentId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// ListProctorships 列出教授指導的學生
func (h *StudentHandler) ListProctorships(c *gin.Context) {
	students, err := h.studentService.ListProctorships(c.Request.Context(), c.Param("professorId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// AssignProctorInput 指派指導教授的請求
type AssignProctorInput struct {
	StudentID string `json:"studentId" binding:"required"`
}

// AssignProctor 把學生指派給路徑中的教授
func (h *StudentHandler) AssignProctor(c *gin.Context) {
	var input AssignProctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if isValidationError(err) {
			respondError(c, h.logger, service.ErrMissingFields)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	student, err := h.studentService.AssignProctor(c.Request.Context(), c.Param("professorId"), input.StudentID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, student)
}
