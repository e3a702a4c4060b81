package models

import (
	"time"

	"gorm.io/gorm"
)

// ShoppingCart 购物车表
// 每个用户只有一个购物车，在注册时创建
type ShoppingCart struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // 主键
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"` // 用户ID（一人一车）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
