package public

import (
	"errors"

	"github.com/bookstore-next/internal/constants"
	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/i18n"
	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Email           string                `json:"email" binding:"required"`
	Password        string                `json:"password" binding:"required"`
	FirstName       string                `json:"first_name"`
	LastName        string                `json:"last_name"`
	ShippingAddress string                `json:"shipping_address"`
	Locale          string                `json:"locale"`
	CaptchaPayload  CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email          string                `json:"email" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	RememberMe     bool                  `json:"remember_me"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserChangePasswordRequest 修改密码请求
type UserChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if !h.verifyCaptcha(c, constants.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShippingAddress: req.ShippingAddress,
		Locale:          req.Locale,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "error.email_exists", nil)
		case errors.Is(err, service.ErrWeakPassword):
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, perr.Key(), perr.Args()...), nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		default:
			respondError(c, response.CodeInternal, "error.register_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       h.userProfileResponse(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.LoginWithRememberMe(req.Email, req.Password, req.RememberMe)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "error.login_invalid", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeUnauthorized, "error.user_disabled", nil)
		default:
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       h.userProfileResponse(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetCurrentUser 获取当前用户
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"user": h.userProfileResponse(user)})
}

// UpdateUserProfile 更新用户资料
func (h *Handler) UpdateUserProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(uid, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "error.profile_empty", nil)
		default:
			respondError(c, response.CodeInternal, "error.profile_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"user": h.userProfileResponse(user)})
}

// ChangeUserPassword 修改密码
func (h *Handler) ChangeUserPassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req UserChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeBadRequest, "error.password_invalid", nil)
		case errors.Is(err, service.ErrWeakPassword):
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, perr.Key(), perr.Args()...), nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		default:
			respondError(c, response.CodeInternal, "error.password_change_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"changed": true})
}

func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	if err := h.CaptchaService.Verify(scene, payload.toServicePayload()); err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaRequired):
			respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
		case errors.Is(err, service.ErrCaptchaInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.captcha_config_invalid", err)
		}
		return false
	}
	return true
}

func (h *Handler) userProfileResponse(user *models.User) gin.H {
	if user == nil {
		return gin.H{}
	}
	return gin.H{
		"id":               user.ID,
		"email":            user.Email,
		"first_name":       user.FirstName,
		"last_name":        user.LastName,
		"shipping_address": user.ShippingAddress,
		"locale":           user.Locale,
		"created_at":       user.CreatedAt,
	}
}
