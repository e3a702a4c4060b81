package models

import (
	"time"
)

// CartItem 购物车项
// 同一购物车内同一本书最多一行，重复添加在入库前被拒绝，
// 复合唯一索引兜底并发下的重复写入
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                  // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_book" json:"cart_id"` // 购物车ID
	BookID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_book" json:"book_id"` // 图书ID
	Quantity  int       `gorm:"not null" json:"quantity"`                              // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                               // 更新时间

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"` // 关联图书
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
