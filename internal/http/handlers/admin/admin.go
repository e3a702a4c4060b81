package admin

import (
	"errors"
	"strconv"

	"github.com/bookstore-next/internal/constants"
	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/i18n"
	"github.com/bookstore-next/internal/repository"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                `json:"username" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneLogin, req.CaptchaPayload.toServicePayload()); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
				return
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
				return
			case errors.Is(captchaErr, service.ErrCaptchaConfigInvalid):
				respondError(c, response.CodeInternal, "error.captcha_config_invalid", captchaErr)
				return
			default:
				respondError(c, response.CodeInternal, "error.captcha_verify_failed", captchaErr)
				return
			}
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.admin_login_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	// 获取当前登录用户 ID
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
			return
		}
		if errors.Is(err, service.ErrWeakPassword) {
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	response.Success(c, nil)
}

// ====================  图书管理  ====================

// GetAdminBooks 获取图书列表 (Admin)
func (h *Handler) GetAdminBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BookListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		WithCategory: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || categoryID == 0 {
			respondError(c, response.CodeBadRequest, "error.category_id_invalid", nil)
			return
		}
		filter.CategoryID = uint(categoryID)
	}

	books, total, err := h.BookService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, books, response.BuildPagination(page, pageSize, total))
}

// GetAdminBook 获取图书详情 (Admin)
func (h *Handler) GetAdminBook(c *gin.Context) {
	id, ok := parseIDParam(c, "error.book_id_invalid")
	if !ok {
		return
	}

	book, err := h.BookService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.Success(c, book)
}

// CreateBook 创建图书
func (h *Handler) CreateBook(c *gin.Context) {
	var req service.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	book, err := h.BookService.Create(req)
	if err != nil {
		respondBookMutationError(c, err, "error.book_create_failed")
		return
	}

	response.Success(c, book)
}

// UpdateBook 更新图书
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "error.book_id_invalid")
	if !ok {
		return
	}

	var req service.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	book, err := h.BookService.Update(id, req)
	if err != nil {
		respondBookMutationError(c, err, "error.book_update_failed")
		return
	}

	response.Success(c, book)
}

// DeleteBook 删除图书（软删除）
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "error.book_id_invalid")
	if !ok {
		return
	}

	if err := h.BookService.Delete(id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

func respondBookMutationError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		respondError(c, response.CodeNotFound, "error.book_not_found", nil)
	case errors.Is(err, service.ErrBookFieldsRequired):
		respondError(c, response.CodeBadRequest, "error.book_fields_required", nil)
	case errors.Is(err, service.ErrInvalidBookPrice):
		respondError(c, response.CodeBadRequest, "error.book_price_invalid", nil)
	case errors.Is(err, service.ErrISBNExists):
		respondError(c, response.CodeConflict, "error.isbn_exists", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "error.category_not_found", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// ====================  分类管理  ====================

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNameEmpty) {
			respondError(c, response.CodeBadRequest, "error.category_name_empty", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_create_failed", err)
		return
	}

	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "error.category_id_invalid")
	if !ok {
		return
	}

	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		case errors.Is(err, service.ErrCategoryNameEmpty):
			respondError(c, response.CodeBadRequest, "error.category_name_empty", nil)
		default:
			respondError(c, response.CodeInternal, "error.category_update_failed", err)
		}
		return
	}

	response.Success(c, category)
}

// DeleteCategory 删除分类（软删除，分类下图书保留）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "error.category_id_invalid")
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

func parseIDParam(c *gin.Context, invalidKey string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(id), true
}
