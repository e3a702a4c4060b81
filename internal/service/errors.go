package service

import "errors"

// 服务层哨兵错误，处理器通过 errors.Is 映射为响应码
var (
	// 通用
	ErrNotFound = errors.New("resource not found")

	// 认证
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password too weak")
	ErrUserDisabled       = errors.New("user disabled")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrProfileEmpty       = errors.New("profile update is empty")

	// 图书与分类
	ErrBookNotFound       = errors.New("book not found")
	ErrBookFieldsRequired = errors.New("title, author and isbn are required")
	ErrISBNExists         = errors.New("isbn already exists")
	ErrInvalidBookPrice   = errors.New("book price must not be negative")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameEmpty  = errors.New("category name is required")

	// 购物车
	ErrCartNotFound      = errors.New("shopping cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrDuplicateCartItem = errors.New("book already in cart")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")

	// 订单
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderItemNotFound  = errors.New("order item not found")
	ErrCartEmpty          = errors.New("shopping cart is empty")
	ErrInvalidOrderStatus = errors.New("unrecognized order status")

	// 验证码
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	// 邮件
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
