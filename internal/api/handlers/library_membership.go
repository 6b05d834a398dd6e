package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus_api/internal/service"
)

// LibraryMembershipHandler 處理學生圖書館會籍的請求
type LibraryMembershipHandler struct {
	membershipService *service.LibraryMembershipService
	logger            *zap.Logger
}

func NewLibraryMembershipHandler(membershipService *service.LibraryMembershipService, logger *zap.Logger) *LibraryMembershipHandler {
	return &LibraryMembershipHandler{membershipService: membershipService, logger: logger}
}

// GetMembership 沒有會籍時回傳 200 和 null
func (h *LibraryMembershipHandler) GetMembership(c *gin.Context) {
	membership, err := h.membershipService.GetMembership(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (h *LibraryMembershipHandler) CreateMembership(c *gin.Context) {
	attrs, ok := bindPatch(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.CreateMembership(c.Request.Context(), c.Param("studentId"), attrs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

func (h *LibraryMembershipHandler) UpdateMembership(c *gin.Context) {
	attrs, ok := bindPatch(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.UpdateMembership(c.Request.Context(), c.Param("studentId"), attrs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (h *LibraryMembershipHandler) DeleteMembership(c *gin.Context) {
	if err := h.membershipService.DeleteMembership(c.Request.Context(), c.Param("studentId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Library membership deleted"})
}
