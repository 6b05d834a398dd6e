package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus_api/internal/service"
)

// ProfessorHandler 處理與教授相關的請求
type ProfessorHandler struct {
	professorService *service.ProfessorService
	logger           *zap.Logger
}

// NewProfessorHandler 創建一個新的 ProfessorHandler 實例
func NewProfessorHandler(professorService *service.ProfessorService, logger *zap.Logger) *ProfessorHandler {
	return &ProfessorHandler{professorService: professorService, logger: logger}
}

func (h *ProfessorHandler) ListProfessors(c *gin.Context) {
	professors, err := h.professorService.ListProfessors(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, professors)
}

func (h *ProfessorHandler) CreateProfessor(c *gin.Context) {
	var input service.CreateProfessorInput
	if !bindCreateInput(c, h.logger, &input) {
		return
	}

	professor, err := h.professorService.CreateProfessor(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, professor)
}

func (h *ProfessorHandler) UpdateProfessor(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	professor, err := h.professorService.UpdateProfessor(c.Request.Context(), c.Param("professorId"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, professor)
}

func (h *ProfessorHandler) DeleteProfessor(c *gin.Context) {
	if err := h.professorService.DeleteProfessor(c.Request.Context(), c.Param("professorId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professor deleted"})
}
