package admin

import (
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateUserStatusRequest 更新顾客状态请求
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAdminUsers 顾客列表
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   strings.ToLower(strings.TrimSpace(c.Query("status"))),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// GetAdminUser 顾客详情
func (h *Handler) GetAdminUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	user, err := h.UserRepo.GetByID(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}
	response.Success(c, user)
}

// UpdateAdminUserStatus 启用或禁用顾客账号，待验证账号不可直接启用
func (h *Handler) UpdateAdminUserStatus(c *gin.Context) {
	userID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		respondError(c, response.CodeBadRequest, "error.user_status_invalid", nil)
		return
	}
	user, err := h.UserRepo.GetByID(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}
	if status == constants.UserStatusActive && user.EmailVerifiedAt == nil {
		respondError(c, response.CodeBadRequest, "error.email_not_verified", nil)
		return
	}
	user.Status = status
	if err := h.UserRepo.Update(user); err != nil {
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}
	requestLog(c).Infow("admin_user_status_updated", "admin_id", currentAdminID(c), "user_id", user.ID, "status", status)
	response.Success(c, user)
}
