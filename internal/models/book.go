package models

import (
	"time"

	"gorm.io/gorm"
)

// Book 图书表
type Book struct {
	ID          uint           `gorm:"primarykey" json:"id"`                   // 主键
	Title       string         `gorm:"not null;index" json:"title"`            // 书名
	Author      string         `gorm:"not null;index" json:"author"`           // 作者
	ISBN        string         `gorm:"uniqueIndex;not null" json:"isbn"`       // ISBN（唯一）
	Price       Money          `gorm:"type:decimal(20,2);not null" json:"price"` // 价格
	Description string         `gorm:"type:text" json:"description"`           // 简介
	CoverImage  string         `gorm:"type:varchar(500)" json:"cover_image"`   // 封面图片
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间

	Categories []Category `gorm:"many2many:book_categories" json:"categories,omitempty"` // 关联分类
}

// TableName 指定表名
func (Book) TableName() string {
	return "books"
}
