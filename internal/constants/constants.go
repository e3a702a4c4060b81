package constants

// 订单状态常量
const (
	OrderStatusCreated   = "created"
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// OrderStatuses 订单状态全集（规范形式为小写）
var OrderStatuses = []string{
	OrderStatusCreated,
	OrderStatusPending,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCanceled,
}

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "bs"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 站点语言常量
const (
	LocaleZhCN = "zh-CN"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}
