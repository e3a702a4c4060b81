package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 价格与书名为下单时刻的快照，后续图书改价不影响历史订单
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                     // 订单ID
	BookID    uint           `gorm:"index;not null" json:"book_id"`                      // 图书ID
	Title     string         `gorm:"not null" json:"title"`                              // 书名快照
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	Quantity  int            `gorm:"not null" json:"quantity"`                           // 数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
