package repository

import (
	"strings"

	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// BookSearchFilter 图书搜索条件
// 每个字段对应一条独立谓词，非空字段之间取交集（AND）。
// 字段集合是封闭枚举，不走字符串注册表。
type BookSearchFilter struct {
	Authors     []string
	Titles      []string
	ISBNs       []string
	CategoryIDs []uint
	CoverImages []string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
}

// IsEmpty 判断是否为空条件（返回未过滤的全量目录）
func (f BookSearchFilter) IsEmpty() bool {
	return len(f.Authors) == 0 &&
		len(f.Titles) == 0 &&
		len(f.ISBNs) == 0 &&
		len(f.CategoryIDs) == 0 &&
		len(f.CoverImages) == 0 &&
		f.PriceMin == nil &&
		f.PriceMax == nil
}

// Scopes 将非空字段翻译为 gorm scope 列表
// 无共享状态，可在并发请求间复用。
func (f BookSearchFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, 6)
	if len(f.Authors) > 0 {
		scopes = append(scopes, f.authorScope)
	}
	if len(f.Titles) > 0 {
		scopes = append(scopes, f.titleScope)
	}
	if len(f.ISBNs) > 0 {
		scopes = append(scopes, f.isbnScope)
	}
	if len(f.CategoryIDs) > 0 {
		scopes = append(scopes, f.categoryScope)
	}
	if len(f.CoverImages) > 0 {
		scopes = append(scopes, f.coverImageScope)
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		scopes = append(scopes, f.priceScope)
	}
	return scopes
}

// authorScope 作者集合匹配
func (f BookSearchFilter) authorScope(db *gorm.DB) *gorm.DB {
	return db.Where("books.author IN ?", f.Authors)
}

// titleScope 书名模糊匹配，多个值用逗号拼接后做包含匹配
func (f BookSearchFilter) titleScope(db *gorm.DB) *gorm.DB {
	like := "%" + strings.Join(f.Titles, ",") + "%"
	return db.Where("books.title "+likeOperator(db)+" ?", like)
}

// isbnScope ISBN 集合匹配
func (f BookSearchFilter) isbnScope(db *gorm.DB) *gorm.DB {
	return db.Where("books.isbn IN ?", f.ISBNs)
}

// categoryScope 分类集合匹配，经连接表过滤
// 用 EXISTS 而不是 JOIN，避免多分类命中时重复行影响计数
func (f BookSearchFilter) categoryScope(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM book_categories WHERE book_categories.book_id = books.id AND book_categories.category_id IN ?)",
		f.CategoryIDs,
	)
}

// coverImageScope 封面集合匹配
func (f BookSearchFilter) coverImageScope(db *gorm.DB) *gorm.DB {
	return db.Where("books.cover_image IN ?", f.CoverImages)
}

// priceScope 价格闭区间匹配 [min, max]，单边缺省时退化为单边比较
func (f BookSearchFilter) priceScope(db *gorm.DB) *gorm.DB {
	if f.PriceMin != nil && f.PriceMax != nil {
		return db.Where("books.price BETWEEN ? AND ?", *f.PriceMin, *f.PriceMax)
	}
	if f.PriceMin != nil {
		return db.Where("books.price >= ?", *f.PriceMin)
	}
	return db.Where("books.price <= ?", *f.PriceMax)
}
