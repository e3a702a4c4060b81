package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点文案语言
const (
	LocaleZH = "zh"
	LocaleEN = "en"
)

// ResolveLocale 解析请求语言
// 优先级：query 参数 lang > Accept-Language 头 > 英文兜底
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleEN
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	if header := strings.TrimSpace(c.GetHeader("Accept-Language")); header != "" {
		primary := strings.SplitN(header, ",", 2)[0]
		return Normalize(primary)
	}
	return LocaleEN
}

// Normalize 把 BCP 47 语言标签折叠到受支持的语言
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if strings.HasPrefix(l, "zh") {
		return LocaleZH
	}
	return LocaleEN
}

// T 查找文案，未命中时原样返回 key
func T(locale, key string) string {
	table, ok := messages[Normalize(locale)]
	if !ok {
		table = messages[LocaleEN]
	}
	if text, ok := table[key]; ok {
		return text
	}
	if fallback, ok := messages[LocaleEN][key]; ok {
		return fallback
	}
	return key
}

// Sprintf 查找带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
