package repository

import (
	"errors"

	"github.com/bookstore-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUserID(userID uint) (*models.ShoppingCart, error)
	Create(cart *models.ShoppingCart) error
	GetItemByID(itemID uint) (*models.CartItem, error)
	GetItemByCartAndBook(cartID, bookID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(cartID, itemID uint) error
	ClearByCart(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUserID 获取用户购物车（带购物车项与图书）
func (r *GormCartRepository) GetByUserID(userID uint) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Book").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.ShoppingCart) error {
	return r.db.Create(cart).Error
}

// GetItemByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetItemByID(itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByCartAndBook 查找购物车内某本书的条目
func (r *GormCartRepository) GetItemByCartAndBook(cartID, bookID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND book_id = ?", cartID, bookID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 创建购物车项
// 复合唯一索引 (cart_id, book_id) 兜底并发重复添加
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteItem 删除购物车项（缺失时为幂等空操作）
func (r *GormCartRepository) DeleteItem(cartID, itemID uint) error {
	return r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{}).Error
}

// ClearByCart 清空购物车（订单提交后在同一事务内调用）
func (r *GormCartRepository) ClearByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
