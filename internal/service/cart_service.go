package service

import (
	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"
)

// CartService 购物车服务
// 每个用户只有一个购物车，注册时创建
type CartService struct {
	cartRepo repository.CartRepository
	bookRepo repository.BookRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, bookRepo repository.BookRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// AddItemInput 添加购物车项的输入
type AddItemInput struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// UpdateItemInput 更新购物车项数量的输入
type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetByUserID 获取用户购物车
func (s *CartService) GetByUserID(userID uint) (*models.ShoppingCart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddItem 向购物车添加图书
// 同一本书重复添加返回冲突，数量调整走 UpdateItemQuantity
func (s *CartService) AddItem(userID uint, input AddItemInput) (*models.CartItem, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	book, err := s.bookRepo.GetByID(input.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	existing, err := s.cartRepo.GetItemByCartAndBook(cart.ID, input.BookID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCartItem
	}

	item := &models.CartItem{
		CartID:   cart.ID,
		BookID:   input.BookID,
		Quantity: input.Quantity,
	}
	if err := s.cartRepo.CreateItem(item); err != nil {
		return nil, err
	}
	item.Book = book
	return item, nil
}

// UpdateItemQuantity 修改购物车项数量
func (s *CartService) UpdateItemQuantity(userID uint, itemID uint, input UpdateItemInput) (*models.CartItem, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CartID != cart.ID {
		return nil, ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateItemQuantity(item.ID, input.Quantity); err != nil {
		return nil, err
	}
	item.Quantity = input.Quantity
	return item, nil
}

// RemoveItem 从购物车移除条目
// 条目不存在时视为成功，删除是幂等的
func (s *CartService) RemoveItem(userID uint, itemID uint) error {
	cart, err := s.GetByUserID(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(cart.ID, itemID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	cart, err := s.GetByUserID(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.ClearByCart(cart.ID)
}
