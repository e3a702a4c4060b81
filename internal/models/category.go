package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`              // 主键
	Name        string         `gorm:"not null;index" json:"name"`        // 分类名称
	Description string         `gorm:"type:text" json:"description"`      // 分类描述
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	Books []Book `gorm:"many2many:book_categories" json:"books,omitempty"` // 关联图书
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
