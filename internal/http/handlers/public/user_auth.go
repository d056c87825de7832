package public

import (
	"net/http"
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	FullName string `json:"full_name" form:"fullName"`
	Phone    string `json:"phone" form:"phone"`
}

// VerifyEmailRequest 邮箱验证请求
type VerifyEmailRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
	Code  string `json:"code" form:"code" binding:"required"`
}

// EmailRequest 仅含邮箱的请求
type EmailRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
}

// LoginForm 登录表单
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email       string `json:"email" form:"email" binding:"required"`
	Code        string `json:"code" form:"code" binding:"required"`
	NewPassword string `json:"new_password" form:"newPassword" binding:"required"`
}

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"fullName"`
	Phone    string `json:"phone" form:"phone"`
}

// AddressRequest 收货地址请求
type AddressRequest struct {
	RecipientName string `json:"recipient_name" form:"recipientName"`
	Phone         string `json:"phone" form:"phone"`
	Street        string `json:"street" form:"street"`
	Ward          string `json:"ward" form:"ward"`
	District      string `json:"district" form:"district"`
	City          string `json:"city" form:"city"`
	IsDefault     bool   `json:"is_default" form:"isDefault"`
}

// UserProfileResponse 顾客资料
type UserProfileResponse struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	EmailVerified bool   `json:"email_verified"`
	Locale        string `json:"locale"`
}

func buildUserProfile(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Phone:         user.Phone,
		Status:        user.Status,
		EmailVerified: user.EmailVerifiedAt != nil,
		Locale:        user.Locale,
	}
}

// LoginPage 登录页，返回一次性提示与当前身份
func (h *Handler) LoginPage(c *gin.Context) {
	data := gin.H{"authenticated": currentIdentity(c).Authenticated()}
	if h.Sessions != nil {
		data["flashes"] = h.Sessions.Flashes(c)
	}
	response.Success(c, data)
}

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.UserAuthService.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Locale:   i18n.ResolveLocale(c),
	})
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.register"), buildUserProfile(user))
}

// VerifyEmail 邮箱验证
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.UserAuthService.VerifyEmail(req.Email, strings.TrimSpace(req.Code))
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.verified"), buildUserProfile(user))
}

// ResendVerifyCode 重新发送注册验证码
func (h *Handler) ResendVerifyCode(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.UserAuthService.ResendCode(c.Request.Context(), req.Email); err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.code_sent"), nil)
}

// Login 登录，成功后跳回登录前记录的页面
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	user, err := h.UserAuthService.Login(form.Email, form.Password)
	if err != nil {
		key := flashKeyForError(c, err, accountErrorRules, "error.internal")
		h.flashErrorAndRedirect(c, http.StatusSeeOther, key, constants.PathLogin)
		return
	}
	if h.Sessions == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}
	target, err := h.Sessions.SignIn(c, user.ID, user.Email)
	if err != nil {
		h.flashErrorAndRedirect(c, http.StatusSeeOther, "error.internal", constants.PathLogin)
		return
	}
	requestLog(c).Infow("user_login", "user_id", user.ID, "redirect", target)
	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.login", target)
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	if h.Sessions != nil {
		_ = h.Sessions.SignOut(c)
	}
	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.logout", constants.PathLogin)
}

// ForgotPassword 发送重置密码验证码
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.UserAuthService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.code_sent"), nil)
}

// ResetPassword 重置密码
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.UserAuthService.ResetPassword(req.Email, strings.TrimSpace(req.Code), req.NewPassword); err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.password_reset"), nil)
}

// GetProfile 获取个人资料
func (h *Handler) GetProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(identity)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, buildUserProfile(user))
}

// UpdateProfile 更新个人资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.UserAuthService.UpdateProfile(identity, req.FullName, req.Phone)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.profile_updated"), buildUserProfile(user))
}

// ListAddresses 收货地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.List(c.Request.Context(), identity)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, addresses)
}

// CreateAddress 新增收货地址
func (h *Handler) CreateAddress(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	address, err := h.AddressService.Create(c.Request.Context(), identity, service.AddressInput{
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Street:        req.Street,
		Ward:          req.Ward,
		District:      req.District,
		City:          req.City,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.address_saved"), address)
}

// SetDefaultAddress 设为默认地址
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	addressID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	address, err := h.AddressService.SetDefault(c.Request.Context(), identity, addressID)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.address_saved"), address)
}

// DeleteAddress 删除收货地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	addressID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.AddressService.Delete(c.Request.Context(), identity, addressID); err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.address_deleted"), nil)
}
