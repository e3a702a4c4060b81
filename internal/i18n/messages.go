package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Unauthorized",
		"error.forbidden":              "Permission denied",
		"error.save_failed":            "Save failed",
		"error.config_fetch_failed":    "Failed to load configuration",
		"error.auth_header_missing":    "Authorization header is missing",
		"error.auth_header_invalid":    "Authorization header is invalid",
		"error.token_invalid":          "Token is invalid or expired",
		"error.token_revoked":          "Token has been revoked, please sign in again",
		"error.jwt_secret_missing":     "Authentication is not configured",
		"error.rate_limited":           "Too many requests, please try again later",
		"error.rate_limit_unavailable": "Rate limiter is unavailable",
		"error.login_too_many":         "Too many login attempts, please try again later",

		"error.login_invalid":       "Incorrect email or password",
		"error.login_failed":        "Login failed",
		"error.admin_login_invalid": "Incorrect username or password",
		"error.register_failed":     "Registration failed",
		"error.email_invalid":       "Email address is invalid",
		"error.email_exists":        "Email address is already registered",
		"error.user_disabled":       "Account has been disabled",

		"error.captcha_required":        "Captcha is required",
		"error.captcha_invalid":         "Captcha is incorrect or expired",
		"error.captcha_unavailable":     "Captcha service is unavailable",
		"error.captcha_config_invalid":  "Captcha is not configured correctly",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.captcha_verify_failed":   "Failed to verify captcha",

		"error.password_invalid":         "Password is invalid",
		"error.password_old_invalid":     "Current password is incorrect",
		"error.password_change_failed":   "Failed to change password",
		"error.password_weak":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",

		"error.profile_empty":         "No profile fields to update",
		"error.profile_update_failed": "Failed to update profile",

		"error.book_id_invalid":      "Book ID is invalid",
		"error.book_not_found":       "Book not found",
		"error.book_fetch_failed":    "Failed to fetch books",
		"error.book_create_failed":   "Failed to create book",
		"error.book_update_failed":   "Failed to update book",
		"error.book_delete_failed":   "Failed to delete book",
		"error.book_fields_required": "Title, author and ISBN are required",
		"error.book_price_invalid":   "Book price is invalid",
		"error.isbn_exists":          "A book with this ISBN already exists",
		"error.search_param_unknown": "Unknown search parameter: %s",
		"error.price_range_invalid":  "Price range is invalid",

		"error.category_id_invalid":    "Category ID is invalid",
		"error.category_not_found":     "Category not found",
		"error.category_fetch_failed":  "Failed to fetch categories",
		"error.category_create_failed": "Failed to create category",
		"error.category_update_failed": "Failed to update category",
		"error.category_delete_failed": "Failed to delete category",
		"error.category_name_empty":    "Category name is required",

		"error.cart_not_found":        "Cart not found",
		"error.cart_fetch_failed":     "Failed to fetch cart",
		"error.cart_update_failed":    "Failed to update cart",
		"error.cart_empty":            "Cart is empty",
		"error.cart_item_id_invalid":  "Cart item ID is invalid",
		"error.cart_item_not_found":   "Cart item not found",
		"error.cart_item_duplicate":   "Book is already in the cart",
		"error.quantity_invalid":      "Quantity must be greater than zero",

		"error.order_id_invalid":      "Order ID is invalid",
		"error.order_not_found":       "Order not found",
		"error.order_fetch_failed":    "Failed to fetch orders",
		"error.order_create_failed":   "Failed to place order",
		"error.order_update_failed":   "Failed to update order",
		"error.order_status_invalid":  "Order status is invalid",
		"error.order_item_id_invalid": "Order item ID is invalid",
		"error.order_item_not_found":  "Order item not found",

		"error.user_id_invalid":      "User ID is invalid",
		"error.user_id_type_invalid": "User identity is invalid",
		"error.user_not_found":       "User not found",
		"error.user_fetch_failed":    "Failed to fetch users",
		"error.user_update_failed":   "Failed to update user",

		"error.admin_id_invalid":            "Admin ID is invalid",
		"error.admin_id_type_invalid":       "Admin identity is invalid",
		"error.admin_username_invalid":      "Admin username is invalid",
		"error.admin_username_exists":       "Admin username already exists",
		"error.admin_create_failed":         "Failed to create admin",
		"error.admin_update_failed":         "Failed to update admin",
		"error.admin_delete_failed":         "Failed to delete admin",
		"error.admin_delete_self_forbidden": "You cannot delete your own account",
		"error.admin_delete_last_forbidden": "The last admin account cannot be deleted",
		"error.admin_delete_protected":      "This admin account is protected",

		"order.status.created":   "Created",
		"order.status.pending":   "Pending",
		"order.status.delivered": "Delivered",
		"order.status.completed": "Completed",
		"order.status.canceled":  "Canceled",

		"email.order_status.subject":        "Your order is %s",
		"email.order_status.body":           "Order %s is now %s.\nTotal: %s\n\nThank you for shopping with us.",
		"email.order_status.body_delivered": "Order %s is now %s.\nTotal: %s\nShipping to: %s\n\nThank you for shopping with us.",
		"email.order_status.body_canceled":  "Order %s has been %s.\nTotal: %s\n\nIf this was unexpected, please contact support.",
	},
	LocaleZH: {
		"error.bad_request":            "请求参数错误",
		"error.unauthorized":           "未授权",
		"error.forbidden":              "没有操作权限",
		"error.save_failed":            "保存失败",
		"error.config_fetch_failed":    "配置加载失败",
		"error.auth_header_missing":    "缺少认证头",
		"error.auth_header_invalid":    "认证头格式错误",
		"error.token_invalid":          "登录凭证无效或已过期",
		"error.token_revoked":          "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":     "认证服务未配置",
		"error.rate_limited":           "请求过于频繁，请稍后再试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.login_too_many":         "登录尝试次数过多，请稍后再试",

		"error.login_invalid":       "邮箱或密码错误",
		"error.login_failed":        "登录失败",
		"error.admin_login_invalid": "用户名或密码错误",
		"error.register_failed":     "注册失败",
		"error.email_invalid":       "邮箱格式错误",
		"error.email_exists":        "邮箱已被注册",
		"error.user_disabled":       "账号已被禁用",

		"error.captcha_required":        "请完成验证码",
		"error.captcha_invalid":         "验证码错误或已过期",
		"error.captcha_unavailable":     "验证码服务不可用",
		"error.captcha_config_invalid":  "验证码配置错误",
		"error.captcha_generate_failed": "验证码生成失败",
		"error.captcha_verify_failed":   "验证码校验失败",

		"error.password_invalid":         "密码不合法",
		"error.password_old_invalid":     "当前密码错误",
		"error.password_change_failed":   "修改密码失败",
		"error.password_weak":            "密码强度不足",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",

		"error.profile_empty":         "没有需要更新的资料",
		"error.profile_update_failed": "资料更新失败",

		"error.book_id_invalid":      "图书 ID 无效",
		"error.book_not_found":       "图书不存在",
		"error.book_fetch_failed":    "图书查询失败",
		"error.book_create_failed":   "图书创建失败",
		"error.book_update_failed":   "图书更新失败",
		"error.book_delete_failed":   "图书删除失败",
		"error.book_fields_required": "书名、作者和 ISBN 不能为空",
		"error.book_price_invalid":   "图书价格无效",
		"error.isbn_exists":          "ISBN 已存在",
		"error.search_param_unknown": "不支持的检索参数：%s",
		"error.price_range_invalid":  "价格区间无效",

		"error.category_id_invalid":    "分类 ID 无效",
		"error.category_not_found":     "分类不存在",
		"error.category_fetch_failed":  "分类查询失败",
		"error.category_create_failed": "分类创建失败",
		"error.category_update_failed": "分类更新失败",
		"error.category_delete_failed": "分类删除失败",
		"error.category_name_empty":    "分类名称不能为空",

		"error.cart_not_found":       "购物车不存在",
		"error.cart_fetch_failed":    "购物车查询失败",
		"error.cart_update_failed":   "购物车更新失败",
		"error.cart_empty":           "购物车为空",
		"error.cart_item_id_invalid": "购物车条目 ID 无效",
		"error.cart_item_not_found":  "购物车条目不存在",
		"error.cart_item_duplicate":  "图书已在购物车中",
		"error.quantity_invalid":     "数量必须大于 0",

		"error.order_id_invalid":      "订单 ID 无效",
		"error.order_not_found":       "订单不存在",
		"error.order_fetch_failed":    "订单查询失败",
		"error.order_create_failed":   "下单失败",
		"error.order_update_failed":   "订单更新失败",
		"error.order_status_invalid":  "订单状态无效",
		"error.order_item_id_invalid": "订单明细 ID 无效",
		"error.order_item_not_found":  "订单明细不存在",

		"error.user_id_invalid":      "用户 ID 无效",
		"error.user_id_type_invalid": "用户身份无效",
		"error.user_not_found":       "用户不存在",
		"error.user_fetch_failed":    "用户查询失败",
		"error.user_update_failed":   "用户更新失败",

		"error.admin_id_invalid":            "管理员 ID 无效",
		"error.admin_id_type_invalid":       "管理员身份无效",
		"error.admin_username_invalid":      "管理员用户名无效",
		"error.admin_username_exists":       "管理员用户名已存在",
		"error.admin_create_failed":         "管理员创建失败",
		"error.admin_update_failed":         "管理员更新失败",
		"error.admin_delete_failed":         "管理员删除失败",
		"error.admin_delete_self_forbidden": "不能删除当前登录账号",
		"error.admin_delete_last_forbidden": "不能删除最后一个管理员",
		"error.admin_delete_protected":      "该管理员账号受保护",

		"order.status.created":   "已创建",
		"order.status.pending":   "处理中",
		"order.status.delivered": "已发货",
		"order.status.completed": "已完成",
		"order.status.canceled":  "已取消",

		"email.order_status.subject":        "您的订单%s",
		"email.order_status.body":           "订单 %s 当前状态：%s。\n订单金额：%s\n\n感谢您的惠顾。",
		"email.order_status.body_delivered": "订单 %s 当前状态：%s。\n订单金额：%s\n收货地址：%s\n\n感谢您的惠顾。",
		"email.order_status.body_canceled":  "订单 %s 已%s。\n订单金额：%s\n\n如非本人操作请联系客服。",
	},
}
